package docx2tex

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// documentConverter produces the base markup output for a whole document.
type documentConverter interface {
	// ToTeX converts the docx at docxPath into texName inside outputDir,
	// extracting referenced media into mediaDir (relative to outputDir).
	ToTeX(ctx context.Context, docxPath, outputDir, texName, mediaDir string) error
}

// pandocConverter converts a .docx to LaTeX by invoking the pandoc CLI in
// the output directory, so the extracted-media directory and the
// \includegraphics paths it generates stay relative.
type pandocConverter struct {
	runner CommandRunner
	pandoc string
}

// ToTeX runs pandoc and surfaces any failure as ErrExternalTool. No
// fallback converter is attempted.
func (c *pandocConverter) ToTeX(ctx context.Context, docxPath, outputDir, texName, mediaDir string) error {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	_, stderr, err := c.runner.Run(ctx, outputDir, c.pandoc,
		docxPath,
		"-o", texName,
		"--standalone",
		"--wrap=none",
		"--extract-media="+mediaDir,
	)
	if err != nil {
		if stderr = strings.TrimSpace(stderr); stderr != "" {
			return fmt.Errorf("%w: %s: %s: %v", ErrExternalTool, c.pandoc, stderr, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrExternalTool, c.pandoc, err)
	}
	return nil
}
