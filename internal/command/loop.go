package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpggio/wordbook/internal/domain/session"
)

const prompt = "Enter a command: "

// Run reads command lines from in until "quit" or end of input, writing
// each result to out.
func (r *Router) Run(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read command: %w", err)
		}
		eof := err != nil
		line = strings.TrimRight(line, "\r\n")

		if eof && line == "" {
			return nil
		}
		if strings.EqualFold(strings.TrimSpace(line), "quit") {
			fmt.Fprintln(out, "Quitting...")
			return nil
		}

		fmt.Fprintln(out, r.Receive(ctx, sess, line))
		if eof {
			return nil
		}
	}
}
