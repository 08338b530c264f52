// Package runner executes assembled commands and records their outcomes.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/magnetcli/magnet/internal/history"
	"github.com/magnetcli/magnet/internal/prompt"
)

// Runner runs one command at a time and appends each result to the shared
// session history.
type Runner struct {
	History  *history.History
	Prompter *prompt.Prompter
	Out      io.Writer
	Confirm  bool // ask before running
}

// Run executes argv strictly as an argument vector, never through a shell,
// so tokens containing spaces or metacharacters pass through verbatim and
// safely; the joined string form exists only for display and history.
//
// Combined stdout/stderr is streamed line by line while the process runs. A
// non-zero exit is reported and recorded as an error outcome but is not
// returned as an error; control returns normally to the caller. Failing to
// start the process at all (e.g. the program is missing) is a real error.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("runner: empty command")
	}
	joined := strings.Join(argv, " ")

	if r.Confirm {
		fmt.Fprintf(r.Out, "\nCommand: %s\n", joined)
		ok, err := r.Prompter.Confirm("Run this command?", true)
		if errors.Is(err, prompt.ErrBack) {
			// The confirmation has no redo step; Back means don't run.
			ok = false
		} else if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.Out, "Command canceled.")
			return nil
		}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	var g errgroup.Group
	g.Go(func() error {
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			fmt.Fprintln(r.Out, scanner.Text())
		}
		return scanner.Err()
	})

	runErr := cmd.Run()
	pw.Close()
	if err := g.Wait(); err != nil {
		return fmt.Errorf("runner: draining output: %w", err)
	}

	if runErr == nil {
		fmt.Fprintln(r.Out, "\nCommand completed successfully.")
		r.History.Add(joined, history.OutcomeSuccess)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		fmt.Fprintf(r.Out, "\nCommand failed with exit status %d.\n", exitErr.ExitCode())
		r.History.Add(joined, history.OutcomeError)
		return nil
	}

	r.History.Add(joined, history.OutcomeError)
	return fmt.Errorf("runner: %s: %w", argv[0], runErr)
}
