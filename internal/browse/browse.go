// Package browse implements the file-selection collaborator used when the
// user types "browse" at a positional-argument prompt.
package browse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/magnetcli/magnet/internal/prompt"
)

// Browser walks directories interactively until the user picks a file.
type Browser struct {
	prompter *prompt.Prompter
	out      io.Writer
}

// New returns a Browser prompting through p and listing to out.
func New(p *prompt.Prompter, out io.Writer) *Browser {
	return &Browser{prompter: p, out: out}
}

// Pick starts at startDir (the current directory when empty) and returns the
// selected file path. exts, when non-empty, hides files whose suffix does not
// match. Entering ".." or nothing moves to the parent directory; a name
// resolves against the current directory; absolute paths are accepted as-is.
// Back and Exit from the prompter pass through to the caller.
func (b *Browser) Pick(startDir string, exts []string) (string, error) {
	dir := startDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("browse: current directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("browse: resolving %s: %w", startDir, err)
	}

	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			parent := filepath.Dir(dir)
			if parent == dir {
				return "", fmt.Errorf("browse: reading %s: %w", dir, err)
			}
			fmt.Fprintf(b.out, "Cannot read %s: %v\n", dir, err)
			dir = parent
			continue
		}

		fmt.Fprintf(b.out, "\nCurrent directory: %s\n", dir)
		fmt.Fprintln(b.out, "  [D] ..")
		for _, e := range entries {
			if e.IsDir() {
				fmt.Fprintf(b.out, "  [D] %s/\n", e.Name())
			} else if matchExt(e.Name(), exts) {
				fmt.Fprintf(b.out, "  [F] %s\n", e.Name())
			}
		}

		choice, err := b.prompter.ReadLine("Enter name, '..' for parent, or a full path: ")
		if err != nil {
			return "", err
		}

		target := choice
		switch {
		case choice == "" || choice == "..":
			dir = filepath.Dir(dir)
			continue
		case !filepath.IsAbs(choice):
			target = filepath.Join(dir, choice)
		}

		info, err := os.Stat(target)
		if err != nil {
			fmt.Fprintf(b.out, "Invalid selection: %s\n", choice)
			continue
		}
		if info.IsDir() {
			dir = target
			continue
		}
		return target, nil
	}
}

// matchExt reports whether name passes the extension filter. Comparison is
// case-insensitive and tolerates filters given with or without a leading dot.
func matchExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}
