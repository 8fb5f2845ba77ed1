package main

import (
	"io"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, args, err := parseFlags([]string{"in.docx", "out"}, io.Discard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(args) != 2 || args[0] != "in.docx" || args[1] != "out" {
			t.Errorf("positional args = %v", args)
		}
		if f.noBackup || f.quiet || f.verbose || f.version {
			t.Errorf("boolean flags unexpectedly set: %+v", f)
		}
		if f.timeout != "" || f.pandoc != "" || f.ruby != "" {
			t.Errorf("string flags unexpectedly set: %+v", f)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		f, args, err := parseFlags([]string{
			"--config", "cfg.yaml",
			"--tex-name", "thesis.tex",
			"--media-dir", "figures",
			"--no-backup",
			"--timeout", "30s",
			"--pandoc", "/usr/bin/pandoc",
			"--ruby", "/usr/bin/ruby",
			"-q",
			"in.docx", "out",
		}, io.Discard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.config != "cfg.yaml" || f.texName != "thesis.tex" || f.mediaDir != "figures" {
			t.Errorf("flags = %+v", f)
		}
		if !f.noBackup || !f.quiet {
			t.Errorf("boolean flags = %+v", f)
		}
		if f.timeout != "30s" || f.pandoc != "/usr/bin/pandoc" || f.ruby != "/usr/bin/ruby" {
			t.Errorf("tool flags = %+v", f)
		}
		if len(args) != 2 {
			t.Errorf("positional args = %v", args)
		}
	})

	t.Run("short flags", func(t *testing.T) {
		f, _, err := parseFlags([]string{"-c", "cfg.yaml", "-t", "1m", "-v"}, io.Discard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.config != "cfg.yaml" || f.timeout != "1m" || !f.verbose {
			t.Errorf("flags = %+v", f)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		var buf strings.Builder
		if _, _, err := parseFlags([]string{"--bogus"}, &buf); err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})
}

func TestPrintUsage(t *testing.T) {
	var f convertFlags
	var buf strings.Builder
	fs := newFlagSet(&f, &buf)

	printUsage(&buf, fs)
	out := buf.String()

	for _, want := range []string{"docx2tex [flags] <input.docx> <out-dir>", "doctor", "--no-backup", "--timeout"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage output missing %q", want)
		}
	}
}
