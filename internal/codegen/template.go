package codegen

import (
	"fmt"
	"text/template"
)

var mainTemplate = template.Must(template.New("main.go").Funcs(template.FuncMap{
	"varName":  toVarName,
	"flagName": flagName,
	"quote":    quoteStr,
}).Parse(mainTemplateSource))

var goModTemplate = template.Must(template.New("go.mod").Parse(goModTemplateSource))

func quoteStr(s string) string {
	return fmt.Sprintf("%q", s)
}

const mainTemplateSource = `// Code generated by magnet {{.MagnetVersion}} for {{.Program}}. DO NOT EDIT.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

{{range .Options}}var {{varName .Flag}} {{if .TakesValue}}string{{else}}bool{{end}}
{{end}}
func main() {
	rootCmd := &cobra.Command{
		Use:   {{quote .ToolName}},
		Short: {{quote (printf "Generated wrapper for %s" .Program)}},
		Args:  cobra.ArbitraryArgs,
		RunE:  run,
	}

{{if .Options}}	f := rootCmd.Flags()
{{range .Options}}	f.{{if .TakesValue}}StringVar{{else}}BoolVar{{end}}(&{{varName .Flag}}, {{quote (flagName .Flag)}}, {{if .TakesValue}}""{{else}}false{{end}}, {{quote .Description}})
{{end}}
{{end}}	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var argv []string
{{if .Options}}	f := cmd.Flags()
{{range .Options}}	if f.Changed({{quote (flagName .Flag)}}) {
		argv = append(argv, {{quote .Flag}}{{if .TakesValue}}, {{varName .Flag}}{{end}})
	}
{{end}}{{end}}	argv = append(argv, args...)

	target := exec.Command({{quote .Program}}, argv...)
	target.Stdin = os.Stdin
	target.Stdout = os.Stdout
	target.Stderr = os.Stderr
	return target.Run()
}
`

const goModTemplateSource = `module {{.ModulePath}}

go 1.25.6

require github.com/spf13/cobra v1.10.2
`
