// Package main is the entry point for the tracestat packet-trace analyzer.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/tracestat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
