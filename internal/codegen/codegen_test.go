package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/magnetcli/magnet/internal/helptext"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pdftk", "pdftk"},
		{"FFmpeg", "ffmpeg"},
		{"img_convert", "img-convert"},
		{"/usr/local/bin/tool", "usr-local-bin-tool"},
		{"weird!!name", "weird-name"},
		{"---", ""},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := Slugify(tc.input); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestToVarName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"--output", "flagOutput"},
		{"--output-file", "flagOutputFile"},
		{"-o", "flagO"},
		{"--no_color", "flagNoColor"},
		{"--", "flagX"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := toVarName(tc.input); got != tc.want {
				t.Errorf("toVarName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("pdftk", helptext.Model{{Short: "-v"}}, "test")
	if ctx.ToolName != "pdftk" || ctx.ModulePath != "pdftk" {
		t.Errorf("unexpected context: %+v", ctx)
	}

	ctx = NewContext("///", nil, "test")
	if ctx.ToolName != "tool" {
		t.Errorf("unslugifiable program should fall back to 'tool', got %q", ctx.ToolName)
	}
}

func TestMainTemplateRendersWrapper(t *testing.T) {
	ctx := NewContext("pdftk", helptext.Model{
		{Short: "-o", Long: "--output", Arg: "FILE", Description: "Output path"},
		{Short: "-v", Long: "--verbose", Description: "Enable verbose mode"},
	}, "test")

	var buf bytes.Buffer
	if err := mainTemplate.Execute(&buf, ctx); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"package main",
		"var flagOutput string",
		"var flagVerbose bool",
		`f.StringVar(&flagOutput, "output", "", "Output path")`,
		`f.BoolVar(&flagVerbose, "verbose", false, "Enable verbose mode")`,
		`argv = append(argv, "--output", flagOutput)`,
		`argv = append(argv, "--verbose")`,
		`exec.Command("pdftk", argv...)`,
		`"github.com/spf13/cobra"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered main.go missing %q:\n%s", want, got)
		}
	}
}

func TestMainTemplateShortOnlyOption(t *testing.T) {
	ctx := NewContext("ls", helptext.Model{
		{Short: "-l", Description: "Option flag"},
	}, "test")

	var buf bytes.Buffer
	if err := mainTemplate.Execute(&buf, ctx); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `f.BoolVar(&flagL, "l", false, "Option flag")`) {
		t.Errorf("short-only flag not registered:\n%s", got)
	}
	if !strings.Contains(got, `argv = append(argv, "-l")`) {
		t.Errorf("short-only flag not appended:\n%s", got)
	}
}

func TestMainTemplateEmptyModel(t *testing.T) {
	// A program with no detected options still gets a valid wrapper that
	// only forwards positional args.
	var buf bytes.Buffer
	if err := mainTemplate.Execute(&buf, NewContext("mystery", nil, "test")); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "f :=") {
		t.Errorf("empty model must not declare an unused flag set:\n%s", got)
	}
	if !strings.Contains(got, `exec.Command("mystery", argv...)`) {
		t.Errorf("passthrough invocation missing:\n%s", got)
	}
}

func TestGoModTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := goModTemplate.Execute(&buf, NewContext("pdftk", nil, "test")); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "module pdftk") {
		t.Errorf("go.mod missing module line:\n%s", got)
	}
	if !strings.Contains(got, "github.com/spf13/cobra") {
		t.Errorf("go.mod missing cobra requirement:\n%s", got)
	}
}
