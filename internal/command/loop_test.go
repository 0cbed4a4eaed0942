package command_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpggio/wordbook/internal/testsession"
	"github.com/stretchr/testify/require"
)

func TestRun_QuitStopsLoop(t *testing.T) {
	ts := testsession.New(t)
	in := strings.NewReader("create Test\r\n  QUIT \nclose\n")
	var out bytes.Buffer

	require.NoError(t, ts.Router.Run(context.Background(), ts.Session, in, &out))

	want := "\nEnter a command: \n" +
		"Created a new dictionary named \"Test\"\n" +
		"\nEnter a command: \n" +
		"Quitting...\n"
	require.Equal(t, want, out.String())
	require.Equal(t, "Test", ts.Session.DictionaryName())
}

func TestRun_EOFWithoutTrailingNewline(t *testing.T) {
	ts := testsession.New(t)
	in := strings.NewReader("create Test\nclose")
	var out bytes.Buffer

	require.NoError(t, ts.Router.Run(context.Background(), ts.Session, in, &out))
	require.Contains(t, out.String(), `Closed "Test"`)
	require.NotContains(t, out.String(), "Quitting...")
	require.Nil(t, ts.Session.Dictionary)
}

func TestRun_CancelledContext(t *testing.T) {
	ts := testsession.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ts.Router.Run(ctx, ts.Session, strings.NewReader("create Test\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, ts.Session.Dictionary)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestRun_ReadErrorIsReturned(t *testing.T) {
	ts := testsession.New(t)

	err := ts.Router.Run(context.Background(), ts.Session, failingReader{}, &bytes.Buffer{})
	require.ErrorContains(t, err, "stdin closed")
}
