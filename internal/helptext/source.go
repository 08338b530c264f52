package helptext

import (
	"bytes"
	"fmt"
	"os/exec"

	shellwords "github.com/mattn/go-shellwords"
)

// Capture invokes argv with each help flag appended in turn and returns the
// first help text it can get. Stdout of a clean invocation wins; when every
// invocation exits non-zero, whatever the last one printed is still the best
// available help, preferring stdout and falling back to stderr (many tools
// print usage to stderr).
func Capture(argv []string, helpFlags []string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("helptext: no program given")
	}
	if len(helpFlags) == 0 {
		helpFlags = []string{"-h", "--help"}
	}

	var lastOut, lastErr bytes.Buffer
	var runErr error
	for _, flag := range helpFlags {
		args := append(append([]string{}, argv[1:]...), flag)
		cmd := exec.Command(argv[0], args...)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		runErr = cmd.Run()
		if runErr == nil && stdout.Len() > 0 {
			return stdout.String(), nil
		}
		lastOut = stdout
		lastErr = stderr
	}

	if lastOut.Len() > 0 {
		return lastOut.String(), nil
	}
	if lastErr.Len() > 0 {
		return lastErr.String(), nil
	}
	if runErr != nil {
		return "", fmt.Errorf("helptext: running %s: %w", argv[0], runErr)
	}
	return "", nil
}

// CaptureCommand splits a full command string into an argument vector and
// captures its help text. Quoting follows shell rules, so commands like
// `pdftk --preserve "a file.pdf"` split as expected.
func CaptureCommand(cmdline string, helpFlags []string) (program, text string, err error) {
	argv, err := shellwords.Parse(cmdline)
	if err != nil {
		return "", "", fmt.Errorf("helptext: splitting command %q: %w", cmdline, err)
	}
	if len(argv) == 0 {
		return "", "", fmt.Errorf("helptext: empty command")
	}
	text, err = Capture(argv, helpFlags)
	return argv[0], text, err
}
