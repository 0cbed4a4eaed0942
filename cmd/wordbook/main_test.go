package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("verbose"))
}

func TestLogFileWriter_TrimsToTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wordbook.log")
	w, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	defer file.Close()
	w.maxSize = 16
	w.keepSize = 8

	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefghij"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghij", string(data))

	_, err = w.Write([]byte("XY"))
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghijXY", string(data))
}

func runRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("WORDBOOK_CONFIG_PATH", "")
	t.Setenv("WORDBOOK_JOURNAL_PATH", filepath.Join(t.TempDir(), "journal.db"))
	t.Setenv("WORDBOOK_LOG_LEVEL", "")
	t.Setenv("WORDBOOK_LOG_PATH", "")
	t.Setenv("WORDBOOK_DATES_ENABLED", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_RunsCommandLoop(t *testing.T) {
	dictPath := filepath.Join(t.TempDir(), "test.dict")
	input := strings.Join([]string{
		"create Test",
		`weakdefine "cat" a feline`,
		"save " + dictPath,
		"quit",
	}, "\n")

	stdout, _, err := runRoot(t, input)
	require.NoError(t, err)
	require.Contains(t, stdout, "Enter a command: ")
	require.Contains(t, stdout, `Added a definition for "cat"`)
	require.Contains(t, stdout, "Quitting...")
	require.FileExists(t, dictPath)

	stdout, _, err = runRoot(t, "find cat\n", dictPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "Opened \"Test\"\n"))
	require.Contains(t, stdout, "cat:\ta feline")
}

func TestRootCmd_DatesFlag(t *testing.T) {
	stdout, _, err := runRoot(t, "create Test\nweakdefine \"cat\" a feline\n", "--dates")
	require.NoError(t, err)
	require.Contains(t, stdout, "ERROR: Malformed date argument!")
}

func TestRootCmd_DebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := runRoot(t, "create Test\n", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, stderr, "command received")
	require.NotContains(t, stdout, "command received")
}

func TestRootCmd_ConfigError(t *testing.T) {
	_, _, err := runRoot(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "config error")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, _, err := runRoot(t, "", "a.dict", "b.dict")
	require.Error(t, err)
}
