package docx2tex

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/canxin121/Introduction-to-Quantum-Information/internal/fileutil"
)

// Service orchestrates the docx-to-tex pipeline: archive read, equation
// location, base document conversion, equation conversion, and placeholder
// substitution. A Service is cheap and stateless across runs; equation
// conversion results are cached only within a single Convert call.
type Service struct {
	cfg     serviceConfig
	runner  CommandRunner
	docConv documentConverter // injectable for tests
	eqConv  equationConverter // injectable for tests
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g. WithPandoc, WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			pandocPath: "pandoc",
			rubyPath:   "ruby",
		},
		runner: &ExecRunner{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.timeout > 0 {
		s.runner = &timeoutRunner{inner: s.runner, timeout: s.cfg.timeout}
	}

	return s
}

// CheckTools verifies the external collaborators are usable: pandoc and
// ruby resolve on PATH, and the mathtype_to_mathml_plus gem loads.
// Returns ErrExternalTool naming the missing piece.
func (s *Service) CheckTools(ctx context.Context) error {
	for _, tool := range []string{s.cfg.pandocPath, s.cfg.rubyPath} {
		if err := s.runner.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s not found: %v", ErrExternalTool, tool, err)
		}
	}

	_, stderr, err := s.runner.Run(ctx, "", s.cfg.rubyPath, "-e", "require 'mathtype_to_mathml_plus'")
	if err != nil {
		return fmt.Errorf("%w: ruby gem mathtype_to_mathml_plus not available: %s: %v", ErrExternalTool, stderr, err)
	}
	return nil
}

// Convert runs the full pipeline and reports what was produced. Any error
// is fatal to the run; no partial substitution output is written.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	docxPath, err := filepath.Abs(input.DocxPath)
	if err != nil {
		return nil, fmt.Errorf("resolving input path: %w", err)
	}
	if !fileutil.FileExists(docxPath) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, docxPath, os.ErrNotExist)
	}

	outputDir, err := filepath.Abs(input.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	doc, err := OpenDocument(docxPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	equations, err := LocateEquations(doc)
	if err != nil {
		return nil, err
	}

	res := &Result{
		TexPath:   filepath.Join(outputDir, input.texName()),
		MediaDir:  filepath.Join(outputDir, input.mediaDir()),
		Equations: len(equations),
	}

	// Back up a prior output before the document converter overwrites it.
	// A failed backup stops the run with nothing overwritten.
	if !input.NoBackup && fileutil.FileExists(res.TexPath) {
		bak := res.TexPath + ".bak"
		if err := fileutil.CopyFile(res.TexPath, bak); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackupWrite, err)
		}
		res.BackupPath = bak
	}

	if err := s.documentConverter().ToTeX(ctx, docxPath, outputDir, input.texName(), input.mediaDir()); err != nil {
		return nil, err
	}

	fragments, err := s.convertEquations(ctx, equations)
	if err != nil {
		return nil, err
	}

	texBytes, err := os.ReadFile(res.TexPath) // #nosec G304 -- path built from validated output dir
	if err != nil {
		return nil, fmt.Errorf("%w: reading generated tex: %v", ErrExternalTool, err)
	}

	out, replaced, err := Substitute(string(texBytes), fragments)
	if err != nil {
		return nil, err
	}
	res.Replaced = replaced

	if err := os.WriteFile(res.TexPath, []byte(out), 0o600); err != nil {
		return nil, fmt.Errorf("writing %s: %w", res.TexPath, err)
	}

	return res, nil
}

// convertEquations runs the equation converter over every located equation,
// keyed by placeholder id. The run aborts on the first failure.
func (s *Service) convertEquations(ctx context.Context, equations []EmbeddedEquation) (map[string]MathFragment, error) {
	conv := s.equationConverter()

	fragments := make(map[string]MathFragment, len(equations))
	for _, eq := range equations {
		frag, err := conv.Convert(ctx, eq)
		if err != nil {
			return nil, err
		}
		fragments[frag.PlaceholderID] = frag
	}
	return fragments, nil
}

// documentConverter returns the injected converter or the pandoc default.
func (s *Service) documentConverter() documentConverter {
	if s.docConv != nil {
		return s.docConv
	}
	return &pandocConverter{runner: s.runner, pandoc: s.cfg.pandocPath}
}

// equationConverter returns the injected converter or a fresh MathType
// chain. Fresh per run: the conversion cache is keyed by OLE part name,
// which is only unique within one document.
func (s *Service) equationConverter() equationConverter {
	if s.eqConv != nil {
		return s.eqConv
	}
	return newMathTypeConverter(s.runner, s.cfg.rubyPath, s.cfg.pandocPath)
}

// timeoutRunner bounds each command invocation with a deadline.
type timeoutRunner struct {
	inner   CommandRunner
	timeout time.Duration
}

func (r *timeoutRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.inner.Run(ctx, dir, name, args...)
}

func (r *timeoutRunner) LookPath(name string) error {
	return r.inner.LookPath(name)
}
