package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/magnetcli/magnet/internal/codegen"
	"github.com/magnetcli/magnet/internal/config"
	"github.com/magnetcli/magnet/internal/helptext"
)

var flagOutput string

var templateCmd = &cobra.Command{
	Use:   "template [program]",
	Short: "Generate a standalone wrapper CLI for a program",
	Long: `Template parses a program's help output and generates a standalone Go
CLI project that exposes the parsed options as flags and invokes the
program. The project is written to a directory named after the program.

Examples:
  magnet template pdftk
  magnet template pdftk --output ./tools/
  pdftk --help | magnet template pdftk`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTemplate,
}

func init() {
	f := templateCmd.Flags()
	f.StringVar(&flagOutput, "output", "", "directory the generated project is written to (default ./out/)")
	f.StringVar(&flagHelpFile, "help-text-file", "", "read help text from a file instead of invoking the program")
	f.StringVar(&flagCommand, "command", "", "full command string to capture help for (split with shell rules)")
	f.BoolVar(&flagVerbose, "verbose", false, "show detailed progress")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress all output except errors")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if err := validateSourceFlags(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	program, model, err := resolveModel(args, cfg)
	if err != nil {
		return err
	}

	outputDir := cfg.TemplateOutput
	if flagOutput != "" {
		outputDir = flagOutput
	}
	return emitTemplate(program, model, outputDir, cmd.OutOrStdout())
}

// emitTemplate renders the generated tool project and reports its path.
func emitTemplate(program string, model helptext.Model, outputDir string, out io.Writer) error {
	ctx := codegen.NewContext(program, model, appVersion)
	verbose("Generating %s in %s...", ctx.ToolName, outputDir)
	dir, err := codegen.Generate(ctx, outputDir)
	if err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(out, "Generated tool template at %s\n", dir)
	}
	return nil
}
