//go:build mage

// Package main contains Mage build targets for the repository's two tool
// collections: the docx2tex converter and the quantum protocol demos.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const binDir = "bin"

// commands maps binary names to their main packages.
var commands = map[string]string{
	"docx2tex": "./cmd/docx2tex",
	"quantum":  "./cmd/quantum",
}

// Build compiles both CLI binaries into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	for name, pkg := range commands {
		out := filepath.Join(binDir, name)
		cmd := exec.Command("go", "build", "-o", out, pkg)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("go build %s: %w", pkg, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Check builds and tests everything.
func Check() {
	mg.SerialDeps(Build, Test)
}
