package codegen

import "github.com/magnetcli/magnet/internal/helptext"

// GenerateContext holds all data needed to generate a standalone wrapper
// CLI for a program.
type GenerateContext struct {
	Program       string         // Target program the wrapper invokes.
	ToolName      string         // Generated CLI name (slug of Program).
	ModulePath    string         // Module path for the generated go.mod.
	MagnetVersion string         // magnet version for the header comment.
	Options       helptext.Model // Parsed option model, embedded as flags.
}

// NewContext builds a GenerateContext from a program name and its parsed
// option model, deriving the tool and module names.
func NewContext(program string, model helptext.Model, version string) GenerateContext {
	name := Slugify(program)
	if name == "" {
		name = "tool"
	}
	return GenerateContext{
		Program:       program,
		ToolName:      name,
		ModulePath:    name,
		MagnetVersion: version,
		Options:       model,
	}
}
