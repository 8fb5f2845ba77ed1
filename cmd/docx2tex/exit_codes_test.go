package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docx2tex "github.com/canxin121/Introduction-to-Quantum-Information/docx2tex"
	"github.com/canxin121/Introduction-to-Quantum-Information/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "external tool", err: docx2tex.ErrExternalTool, want: ExitTool},
		{name: "equation conversion", err: docx2tex.ErrConversion, want: ExitTool},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "backup failure", err: docx2tex.ErrBackupWrite, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid timeout", err: config.ErrInvalidTimeout, want: ExitUsage},
		{name: "empty docx path", err: docx2tex.ErrEmptyDocxPath, want: ExitUsage},
		{name: "empty output dir", err: docx2tex.ErrEmptyOutputDir, want: ExitUsage},
		{name: "not a docx", err: docx2tex.ErrNotDocx, want: ExitUsage},
		{name: "invalid document", err: docx2tex.ErrInvalidDocument, want: ExitGeneral},
		{name: "missing part", err: docx2tex.ErrMissingPart, want: ExitGeneral},
		{name: "unresolved placeholder", err: docx2tex.ErrUnresolvedPlaceholder, want: ExitGeneral},
		{name: "orphan fragment", err: docx2tex.ErrOrphanFragment, want: ExitGeneral},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: image1.wmf: stage ole-to-mathml: exit status 1", docx2tex.ErrConversion)
	if got := exitCodeFor(wrapped); got != ExitTool {
		t.Errorf("wrapped conversion error = %d, want %d", got, ExitTool)
	}

	doubly := fmt.Errorf("running pipeline: %w", fmt.Errorf("%w: backup", docx2tex.ErrBackupWrite))
	if got := exitCodeFor(doubly); got != ExitIO {
		t.Errorf("doubly wrapped backup error = %d, want %d", got, ExitIO)
	}
}
