package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/magnetcli/magnet/internal/assemble"
	"github.com/magnetcli/magnet/internal/browse"
	"github.com/magnetcli/magnet/internal/config"
	"github.com/magnetcli/magnet/internal/helptext"
	"github.com/magnetcli/magnet/internal/history"
	"github.com/magnetcli/magnet/internal/prompt"
	"github.com/magnetcli/magnet/internal/runner"
)

var (
	flagHelpFile string
	flagCommand  string
	flagYes      bool
	flagDir      string
	flagExt      []string
	flagVerbose  bool
	flagQuiet    bool
)

var buildCmd = &cobra.Command{
	Use:   "build [program]",
	Short: "Interactively build and run a command from a program's help output",
	Long: `Build captures a program's help output, parses it into an option menu,
and walks you through assembling a command line, which it then runs.

At any prompt, 'back'/'b' returns to the previous step and 'quit'/'q'
ends the session.

Examples:
  # Parse pdftk's help and build a command interactively
  magnet build pdftk

  # The target needs arguments before it prints useful help
  magnet build --command "git log"

  # Use saved help text instead of invoking the program
  magnet build pdftk --help-text-file pdftk-help.txt

  # Piped input generates a standalone tool template instead
  pdftk --help | magnet build pdftk`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&flagHelpFile, "help-text-file", "", "read help text from a file instead of invoking the program")
	f.StringVar(&flagCommand, "command", "", "full command string to capture help for (split with shell rules)")
	f.BoolVar(&flagYes, "yes", false, "run the assembled command without asking for confirmation")
	f.StringVar(&flagDir, "dir", "", "starting directory for the file browser")
	f.StringSliceVar(&flagExt, "ext", nil, "file extensions shown in the browser (repeatable)")
	f.BoolVar(&flagVerbose, "verbose", false, "show detailed progress")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress all output except errors and prompts")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := validateSourceFlags(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	program, model, err := resolveModel(args, cfg)
	if err != nil {
		return err
	}

	if len(model) == 0 {
		fmt.Fprintf(out, "No options detected in help output for %s.\n", program)
	} else if !flagQuiet {
		fmt.Fprintf(out, "Detected %d options for %s.\n", len(model), program)
	}

	if !stdinIsTerminal() {
		// No interactive input available: serialize the model into a
		// standalone tool template instead of running the assembler.
		fmt.Fprintln(out, "No interactive input available, generating a tool template instead.")
		return emitTemplate(program, model, cfg.TemplateOutput, out)
	}

	browseDir := cfg.BrowseDir
	if flagDir != "" {
		browseDir = flagDir
	}
	browseExts := cfg.BrowseExts
	if len(flagExt) > 0 {
		browseExts = flagExt
	}

	p := prompt.New(cmd.InOrStdin(), out)
	hist := &history.History{}
	sess := &assemble.Session{
		Program:    program,
		Model:      model,
		Prompter:   p,
		Browser:    browse.New(p, out),
		Out:        out,
		BrowseDir:  browseDir,
		BrowseExts: browseExts,
	}
	run := &runner.Runner{
		History:  hist,
		Prompter: p,
		Out:      out,
		Confirm:  cfg.RunConfirm && !flagYes,
	}

loop:
	for {
		draft, err := sess.Build()
		switch {
		case errors.Is(err, prompt.ErrExit):
			break loop
		case errors.Is(err, prompt.ErrBack):
			fmt.Fprintln(out, "Build abandoned.")
		case err != nil:
			return err
		default:
			if err := run.Run(cmd.Context(), draft); err != nil {
				if errors.Is(err, prompt.ErrExit) {
					break loop
				}
				return err
			}
		}

		again, err := p.Confirm("Build another command?", false)
		if err != nil || !again {
			break
		}
	}

	if hist.Len() > 0 {
		fmt.Fprintln(out)
		hist.Render(out)
	}
	return nil
}

// resolveModel determines the target program and its option model from the
// program argument, flags, config, and (when piped) stdin.
func resolveModel(args []string, cfg config.Config) (string, helptext.Model, error) {
	program := ""
	if len(args) > 0 {
		program = args[0]
	}
	if program == "" && flagCommand == "" {
		return "", nil, fmt.Errorf("provide a program name or --command")
	}
	if program != "" && flagCommand != "" {
		return "", nil, fmt.Errorf("a program argument and --command cannot be used together")
	}
	if program == "" {
		parts, err := shellwords.Parse(flagCommand)
		if err != nil || len(parts) == 0 {
			return "", nil, fmt.Errorf("invalid --command %q", flagCommand)
		}
		program = parts[0]
	}

	var text string
	switch {
	case flagHelpFile != "":
		data, err := os.ReadFile(flagHelpFile)
		if err != nil {
			return "", nil, fmt.Errorf("reading help text: %s", err)
		}
		text = string(data)
	case !stdinIsTerminal():
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading help text from stdin: %s", err)
		}
		text = string(data)
	case flagCommand != "":
		verbose("Capturing help for %s...", flagCommand)
		_, captured, err := helptext.CaptureCommand(flagCommand, cfg.HelpFlags)
		if err != nil {
			return "", nil, err
		}
		text = captured
	default:
		verbose("Capturing help for %s...", program)
		captured, err := helptext.Capture([]string{program}, cfg.HelpFlags)
		if err != nil {
			return "", nil, err
		}
		text = captured
	}

	return program, helptext.Extract(text), nil
}

func validateSourceFlags() error {
	if flagVerbose && flagQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	if flagHelpFile != "" && !stdinIsTerminal() {
		return fmt.Errorf("--help-text-file cannot be combined with piped input")
	}
	return nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal. Piped
// input means help text arrives on stdin and no interactive session is
// possible.
func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// verbose prints a message if --verbose is set.
func verbose(format string, args ...interface{}) {
	if flagVerbose {
		fmt.Printf(format+"\n", args...)
	}
}
