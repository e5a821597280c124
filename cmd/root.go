// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/tracestat/internal/analyzer"
	"firestige.xyz/tracestat/internal/config"
	"firestige.xyz/tracestat/internal/log"
	"firestige.xyz/tracestat/internal/report"
)

var (
	// Global flags
	configFile string
	outputFmt  string
	logLevel   string
)

// rootCmd analyzes a trace file when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tracestat <trace_file> [name_table_file]",
	Short: "Tracestat - offline analyzer for FCPT packet-trace files",
	Long: `Tracestat reads a binary packet-trace file (FCPT format), reconstructs
per-packet-type and per-connection statistics, and prints a report.

An optional packets.def file maps packet type numbers to names and
enables coverage analysis. The report goes to stdout; all warnings and
diagnostics go to stderr.`,
	Version: "0.1.0",
	Args:    cobra.RangeArgs(1, 2),
	// main.main prints the returned error; keep cobra from printing it twice.
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument errors above already printed usage; anything from
		// here on is a runtime failure.
		cmd.SilenceUsage = true

		if err := setup(); err != nil {
			return err
		}

		namesPath := ""
		if len(args) > 1 {
			namesPath = args[1]
		}

		res, err := analyzer.Run(args[0], namesPath)
		if err != nil {
			return err
		}

		return renderResult(os.Stdout, res)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level override (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&outputFmt, "output", "o", "",
		"report output format (text, json, yaml)")

	rootCmd.AddCommand(validateCmd)
}

// setup loads the configuration, applies flag overrides and initializes
// logging. Shared by the root and validate commands.
func setup() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if outputFmt != "" {
		cfg.Report.Output = outputFmt
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	loadedCfg = cfg

	return log.Init(&cfg.Log)
}

// loadedCfg is set by setup for the duration of one command.
var loadedCfg *config.Config

func renderResult(w io.Writer, res *report.Result) error {
	switch loadedCfg.Report.Output {
	case config.OutputJSON:
		return report.WriteJSON(w, res)
	case config.OutputYAML:
		return report.WriteYAML(w, res)
	default:
		return report.WriteText(w, res)
	}
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
