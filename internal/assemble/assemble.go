// Package assemble drives the interactive command-building loop: the user
// repeatedly adds flags and positional arguments from the parsed option
// model until the command line is complete.
package assemble

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magnetcli/magnet/internal/helptext"
	"github.com/magnetcli/magnet/internal/prompt"
)

// FileBrowser is the file-selection collaborator consulted when the user
// types "browse" at the positional-argument prompt.
type FileBrowser interface {
	Pick(startDir string, exts []string) (string, error)
}

// Session drives one interactive build for a single program. The draft it
// assembles is owned exclusively by the session and only released on a
// successful finish.
type Session struct {
	Program  string
	Model    helptext.Model
	Prompter *prompt.Prompter
	Browser  FileBrowser
	Out      io.Writer

	BrowseDir  string   // starting directory for the file browser
	BrowseExts []string // extension filter for the file browser
}

// Build runs the loop and returns the finished token sequence, starting with
// the program name. prompt.ErrBack means the user abandoned the build from
// the action menu; prompt.ErrExit means the whole session should end. In
// both cases the partial draft is discarded, never returned.
func (s *Session) Build() ([]string, error) {
	draft := []string{s.Program}
	fmt.Fprintln(s.Out, "Build your command step by step. Type 'back' or 'quit' at any prompt.")

	for {
		fmt.Fprintf(s.Out, "\nCurrent command: %s\n", strings.Join(draft, " "))
		fmt.Fprintln(s.Out, "  1. Add a flag/option")
		fmt.Fprintln(s.Out, "  2. Add a positional argument")
		fmt.Fprintln(s.Out, "  3. Finish building command")

		raw, err := s.Prompter.ReadRaw("Select: ")
		if err != nil {
			return nil, err
		}
		if sig, ok := prompt.Classify(raw); ok {
			// Back at the action menu aborts the whole build, not one step.
			return nil, sig.Err()
		}

		switch raw {
		case "1":
			err = s.addFlag(&draft)
		case "2":
			err = s.addPositional(&draft)
		case "3":
			return draft, nil
		default:
			fmt.Fprintln(s.Out, "Invalid selection, enter 1, 2, or 3.")
			continue
		}
		if err != nil {
			return nil, err
		}
	}
}

// addFlag shows the option list and appends the chosen flag (and its value
// when one is required) to the draft. A nil return with no draft change
// means the step was abandoned or the selection was invalid; the caller
// re-displays the action menu either way.
func (s *Session) addFlag(draft *[]string) error {
	if len(s.Model) == 0 {
		fmt.Fprintln(s.Out, "No options detected for this command.")
		return nil
	}

	fmt.Fprintln(s.Out, "\nAvailable options:")
	for i, opt := range s.Model {
		fmt.Fprintf(s.Out, "  %d. %s\n", i+1, describe(opt))
	}

	raw, err := s.Prompter.ReadRaw("Select option by number: ")
	if err != nil {
		return err
	}
	if sig, ok := prompt.Classify(raw); ok {
		if sig == prompt.SignalExit {
			return prompt.ErrExit
		}
		return nil
	}

	idx, convErr := strconv.Atoi(raw)
	if convErr != nil {
		fmt.Fprintln(s.Out, "Please enter a number.")
		return nil
	}
	if idx < 1 || idx > len(s.Model) {
		fmt.Fprintln(s.Out, "Invalid option number.")
		return nil
	}

	opt := s.Model[idx-1]
	if !opt.TakesValue() {
		*draft = append(*draft, opt.Flag())
		return nil
	}

	value, err := s.Prompter.ReadLine(fmt.Sprintf("Value for %s: ", opt.Arg))
	if errors.Is(err, prompt.ErrBack) {
		// Abandon adding this option only; the draft stays untouched.
		return nil
	}
	if err != nil {
		return err
	}
	*draft = append(*draft, opt.Flag(), value)
	return nil
}

// addPositional appends one free-text token, delegating to the file browser
// when the user types "browse".
func (s *Session) addPositional(draft *[]string) error {
	fmt.Fprintln(s.Out, "\nType a value, or 'browse' to pick a file.")
	raw, err := s.Prompter.ReadRaw("Argument: ")
	if err != nil {
		return err
	}
	if sig, ok := prompt.Classify(raw); ok {
		if sig == prompt.SignalExit {
			return prompt.ErrExit
		}
		return nil
	}
	if raw == "" {
		fmt.Fprintln(s.Out, "Nothing added.")
		return nil
	}

	if strings.EqualFold(raw, "browse") {
		path, err := s.Browser.Pick(s.BrowseDir, s.BrowseExts)
		if errors.Is(err, prompt.ErrBack) {
			return nil
		}
		if err != nil {
			return err
		}
		*draft = append(*draft, path)
		fmt.Fprintf(s.Out, "Added: %s\n", path)
		return nil
	}

	// Appended verbatim as one token; the runner executes the draft as an
	// argument vector, so no quoting is needed here.
	*draft = append(*draft, raw)
	fmt.Fprintf(s.Out, "Added: %s\n", raw)
	return nil
}

// describe formats one option for the numbered menu.
func describe(opt helptext.Option) string {
	label := opt.Flag()
	if opt.Short != "" && opt.Long != "" {
		label = opt.Short + " / " + opt.Long
	}
	if opt.Arg != "" {
		label += " " + opt.Arg
	}
	if opt.Description != "" {
		label += "  " + opt.Description
	}
	return label
}
