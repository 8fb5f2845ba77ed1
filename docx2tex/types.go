package docx2tex

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// EmbeddedEquation identifies one OLE equation occurrence in the document
// body. Created by the locator, consumed once by the converter, never
// mutated.
type EmbeddedEquation struct {
	// PlaceholderID is the base name of the preview-image part
	// (e.g. "image1.wmf"). Pandoc reuses this name in the generated
	// \includegraphics reference, which is what gets substituted.
	PlaceholderID string

	// OLEPart is the base name of the embedded equation blob
	// (e.g. "oleObject1.bin").
	OLEPart string

	// Payload is an owned copy of the equation blob.
	Payload []byte

	// ParagraphText is the text content of the enclosing paragraph,
	// excluding the object itself. Drives inline/display classification.
	ParagraphText string
}

// MathFragment is the result of converting one EmbeddedEquation.
// Immutable once produced; its lifetime ends after substitution.
type MathFragment struct {
	PlaceholderID string
	LaTeX         string
	Mode          Mode
}

// Wrapped returns the fragment's LaTeX wrapped in inline \( .. \) or
// display \[ .. \] delimiters per its mode.
func (f MathFragment) Wrapped() string {
	return wrapMath(f.LaTeX, f.Mode)
}

// Input contains conversion parameters for one run.
type Input struct {
	DocxPath  string // Input .docx path (required)
	OutputDir string // Output directory (required, created if absent)
	TexName   string // Output .tex file name (default: <docx stem>.tex)
	MediaDir  string // Extracted media directory name (default: <docx stem>_media)
	NoBackup  bool   // Skip the .bak copy of a prior output
}

// Validate checks that required fields are present and the input looks
// like a docx path.
func (in Input) Validate() error {
	if in.DocxPath == "" {
		return ErrEmptyDocxPath
	}
	if in.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	if ext := strings.ToLower(filepath.Ext(in.DocxPath)); ext != ".docx" {
		return fmt.Errorf("%w: got %q", ErrNotDocx, ext)
	}
	return nil
}

// stem returns the input file name without its extension.
func (in Input) stem() string {
	base := filepath.Base(in.DocxPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// texName resolves the output .tex file name.
func (in Input) texName() string {
	if in.TexName != "" {
		return in.TexName
	}
	return in.stem() + ".tex"
}

// mediaDir resolves the extracted media directory name.
func (in Input) mediaDir() string {
	if in.MediaDir != "" {
		return in.MediaDir
	}
	return in.stem() + "_media"
}

// Result reports what a run produced.
type Result struct {
	TexPath    string // Final .tex path
	MediaDir   string // Extracted media directory path
	BackupPath string // .bak path, empty when no backup was written
	Equations  int    // Equation objects found in the document
	Replaced   int    // Placeholder references substituted
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	pandocPath string
	rubyPath   string
	timeout    time.Duration
}

// WithPandoc overrides the pandoc executable path or name.
func WithPandoc(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cfg.pandocPath = path
		}
	}
}

// WithRuby overrides the ruby executable path or name.
func WithRuby(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cfg.rubyPath = path
		}
	}
}

// WithTimeout sets a per-invocation external tool timeout. Without it no
// timeout is imposed: a hung tool blocks the run, which is acceptable for a
// single-shot CLI but worth bounding in automation.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docx2tex: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithRunner injects a CommandRunner, primarily for tests.
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		if r != nil {
			s.runner = r
		}
	}
}
