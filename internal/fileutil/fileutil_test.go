package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Run("writes content and cleanup removes file", func(t *testing.T) {
		content := []byte{0xd0, 0xcf, 0x11, 0xe0}

		path, cleanup, err := WriteTempFile(content, "fileutil-test-*.bin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading temp file: %v", err)
		}
		if len(data) != len(content) || data[0] != 0xd0 {
			t.Errorf("unexpected content: %v", data)
		}

		cleanup()
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("temp file still exists after cleanup: %v", err)
		}
	})

	t.Run("empty content is allowed", func(t *testing.T) {
		path, cleanup, err := WriteTempFile(nil, "fileutil-test-*.bin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != 0 {
			t.Errorf("size = %d, want 0", info.Size())
		}
	})

	t.Run("empty pattern rejected", func(t *testing.T) {
		_, _, err := WriteTempFile([]byte("x"), "")
		if !errors.Is(err, ErrPatternEmpty) {
			t.Fatalf("expected ErrPatternEmpty, got %v", err)
		}
	})

	t.Run("pattern with path separator rejected", func(t *testing.T) {
		for _, pattern := range []string{"../escape-*.bin", "a/b-*.bin", "a\\b-*.bin", "a\x00b"} {
			if _, _, err := WriteTempFile([]byte("x"), pattern); !errors.Is(err, ErrPatternPathTraversal) {
				t.Errorf("pattern %q: expected ErrPatternPathTraversal, got %v", pattern, err)
			}
		}
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("existing file reported as absent")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("missing file reported as present")
	}
	if FileExists(dir) {
		t.Error("directory reported as a file")
	}
}

func TestCopyFile(t *testing.T) {
	t.Run("copies content and permissions", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.tex")
		dst := filepath.Join(dir, "src.tex.bak")

		if err := os.WriteFile(src, []byte("\\[x\\]"), 0o640); err != nil {
			t.Fatal(err)
		}
		if err := CopyFile(src, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "\\[x\\]" {
			t.Errorf("content = %q", data)
		}

		info, err := os.Stat(dst)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o640 {
			t.Errorf("perm = %o, want 640", info.Mode().Perm())
		}
	})

	t.Run("truncates existing destination", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "src.txt")
		dst := filepath.Join(dir, "dst.txt")

		if err := os.WriteFile(src, []byte("new"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(dst, []byte("old content much longer"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := CopyFile(src, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "new" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("missing source fails", func(t *testing.T) {
		dir := t.TempDir()
		err := CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})
}
