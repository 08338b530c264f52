package codegen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Generate creates a Go project (main.go + go.mod) for the wrapper CLI under
// outputDir, in a subdirectory named after the tool. If outputDir is empty,
// a temporary directory is created instead. Returns the project directory.
func Generate(ctx GenerateContext, outputDir string) (string, error) {
	if outputDir == "" {
		dir, err := os.MkdirTemp("", "magnet-*")
		if err != nil {
			return "", fmt.Errorf("codegen: create temp dir: %w", err)
		}
		outputDir = dir
	}

	projectDir := filepath.Join(outputDir, ctx.ToolName)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return "", fmt.Errorf("codegen: create output dir: %w", err)
	}

	mainPath := filepath.Join(projectDir, "main.go")
	mainFile, err := os.Create(mainPath)
	if err != nil {
		return projectDir, fmt.Errorf("codegen: create main.go: %w", err)
	}
	defer mainFile.Close()

	if err := mainTemplate.Execute(mainFile, ctx); err != nil {
		return projectDir, fmt.Errorf("codegen: render main.go template: %w", err)
	}

	modPath := filepath.Join(projectDir, "go.mod")
	modFile, err := os.Create(modPath)
	if err != nil {
		return projectDir, fmt.Errorf("codegen: create go.mod: %w", err)
	}
	defer modFile.Close()

	if err := goModTemplate.Execute(modFile, ctx); err != nil {
		return projectDir, fmt.Errorf("codegen: render go.mod template: %w", err)
	}

	// Run go mod tidy to download dependencies and generate go.sum.
	tidyCmd := exec.Command("go", "mod", "tidy")
	tidyCmd.Dir = projectDir
	if out, err := tidyCmd.CombinedOutput(); err != nil {
		return projectDir, fmt.Errorf("codegen: go mod tidy failed: %s\n%s", err, string(out))
	}

	return projectDir, nil
}
