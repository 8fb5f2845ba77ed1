// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPatternEmpty         = errors.New("pattern cannot be empty")
	ErrPatternPathTraversal = errors.New("pattern contains path separator or null byte")
)

// WriteTempFile creates a temporary file with the given content.
// Pattern follows os.CreateTemp semantics (e.g. "docx2tex-*.bin").
// Returns the file path and a cleanup function to remove the file; callers
// must run cleanup on every exit path.
func WriteTempFile(content []byte, pattern string) (path string, cleanup func(), err error) {
	if err := validatePattern(pattern); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.Write(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// validatePattern checks that the pattern is safe for use in temp file names.
func validatePattern(pattern string) error {
	if pattern == "" {
		return ErrPatternEmpty
	}
	if strings.ContainsAny(pattern, "/\\\x00") {
		return ErrPatternPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CopyFile copies src to dst, truncating dst if it exists. The copy is
// complete on disk before CopyFile returns nil.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- paths come from resolved pipeline output locations
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stating %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
