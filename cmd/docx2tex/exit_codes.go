package main

import (
	"errors"
	"os"

	docx2tex "github.com/canxin121/Introduction-to-Quantum-Information/docx2tex"
	"github.com/canxin121/Introduction-to-Quantum-Information/internal/config"
)

// Exit codes for the docx2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error, including data-integrity failures
	ExitUsage   = 2 // Invalid flags, config, or input validation
	ExitIO      = 3 // File not found, permission denied, backup failure
	ExitTool    = 4 // External tool missing or failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, docx2tex.ErrExternalTool) ||
		errors.Is(err, docx2tex.ErrConversion) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docx2tex.ErrBackupWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, docx2tex.ErrEmptyDocxPath) ||
		errors.Is(err, docx2tex.ErrEmptyOutputDir) ||
		errors.Is(err, docx2tex.ErrNotDocx) {
		return ExitUsage
	}

	// Malformed input and bijection violations land here (exit 1).
	return ExitGeneral
}
