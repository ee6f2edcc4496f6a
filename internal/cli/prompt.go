package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"pomo/internal/core"
)

// taskQuestion is asked before each interactive work interval.
const taskQuestion = "What are you working on? (optional)"

// stdinPrompter implements core.Prompter with line-based terminal input.
// Reads block until the user presses enter; the context is checked before
// the prompt is shown and after the line is read, so an interrupt during
// a prompt ends the cycle as soon as the read returns.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates the production prompter reading from stdin.
func NewPrompter() core.Prompter {
	return &stdinPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (p *stdinPrompter) AskTask(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.out, "%s: ", taskQuestion)
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	return line, nil
}

func (p *stdinPrompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(p.out, "%s %s: ", question, hint)
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// readLine reads one trimmed line, preferring a context error over a read
// error when both apply.
func (p *stdinPrompter) readLine(ctx context.Context) (string, error) {
	line, err := p.in.ReadString('\n')
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
