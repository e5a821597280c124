package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestBuildAdapterRejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "chatty"

	_, err := buildAdapter(cfg)
	assert.Error(t, err)
}

func TestFormatterPattern(t *testing.T) {
	adapter, err := buildAdapter(&Config{
		Level:   "info",
		Pattern: "[%level] %field%msg%n",
		Time:    "2006-01-02",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	adapter.entry.Logger.SetOutput(&buf)

	adapter.WithField("conn", 3).Warnf("truncated at offset %d", 27)

	out := buf.String()
	assert.Equal(t, "[WARNING] conn=3 truncated at offset 27\n", out)
}

func TestFormatterLevelFiltering(t *testing.T) {
	adapter, err := buildAdapter(&Config{
		Level:   "warn",
		Pattern: "%level %msg%n",
		Time:    "2006-01-02",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	adapter.entry.Logger.SetOutput(&buf)

	adapter.Info("suppressed")
	adapter.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "kept")
}

func TestMultiWriterFansOut(t *testing.T) {
	var a, b bytes.Buffer
	mw := NewMultiWriter().Add(&a).Add(&b)

	n, err := mw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestAddFileAppender(t *testing.T) {
	mw := NewMultiWriter().AddFileAppender(FileConfig{
		Enabled: true,
		Path:    "/tmp/tracestat-test.log",
		MaxSize: 1,
	})

	require.Len(t, mw.writers, 1)
	lj, ok := mw.writers[0].(*lumberjack.Logger)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(lj.Filename, "tracestat-test.log"))
}
