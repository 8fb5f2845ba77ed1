package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "errors"
	Pandoc   toolInfo   `json:"pandoc"`
	Ruby     toolInfo   `json:"ruby"`
	Gem      gemInfo    `json:"mathtype_gem"`
	System   systemInfo `json:"system"`
	Errors   []string   `json:"errors,omitempty"`
	Warnings []string   `json:"warnings,omitempty"`
}

// toolInfo holds detection results for one executable.
type toolInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// gemInfo holds the mathtype_to_mathml_plus gem check result.
type gemInfo struct {
	Loadable bool `json:"loadable"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = ready, 1 = errors found.
func runDoctorCmd(args []string, stdout io.Writer) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkTool(result, &result.Pandoc, "pandoc", "--version")
	checkTool(result, &result.Ruby, "ruby", "--version")
	checkGem(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// checkTool locates an executable and records its version line.
func checkTool(result *doctorResult, info *toolInfo, name, versionFlag string) {
	path, err := exec.LookPath(name)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%s not found on PATH", name))
		return
	}
	info.Found = true
	info.Path = path

	out, err := exec.Command(path, versionFlag).Output() // #nosec G204 -- path from exec.LookPath
	if err == nil {
		line, _, _ := strings.Cut(string(out), "\n")
		info.Version = strings.TrimSpace(line)
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not get %s version: %v", name, err))
	}
}

// checkGem verifies the mathtype_to_mathml_plus gem loads.
func checkGem(result *doctorResult) {
	if !result.Ruby.Found {
		return
	}
	err := exec.Command(result.Ruby.Path, "-e", "require 'mathtype_to_mathml_plus'").Run() // #nosec G204 -- path from exec.LookPath
	if err != nil {
		result.Errors = append(result.Errors,
			"ruby gem mathtype_to_mathml_plus not loadable (gem install mathtype_to_mathml_plus)")
		return
	}
	result.Gem.Loadable = true
}

// checkSystem verifies the temp directory is writable, since equation
// conversion stages stream through temp files.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "docx2tex-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "docx2tex doctor")
	fmt.Fprintln(w)

	printToolSection(w, "Pandoc", r.Pandoc)
	printToolSection(w, "Ruby", r.Ruby)

	fmt.Fprintln(w, "MathType gem")
	if r.Gem.Loadable {
		fmt.Fprintln(w, "  [OK] mathtype_to_mathml_plus loads")
	} else {
		fmt.Fprintln(w, "  [ERROR] mathtype_to_mathml_plus not loadable")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printToolSection prints one executable's detection result.
func printToolSection(w io.Writer, title string, info toolInfo) {
	fmt.Fprintln(w, title)
	if info.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", info.Path)
		if info.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", info.Version)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)
}
