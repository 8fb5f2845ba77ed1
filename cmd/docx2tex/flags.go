package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage is returned for bad invocations; run prints usage alongside it.
var ErrUsage = errors.New("usage: docx2tex [flags] <input.docx> <out-dir>")

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	config   string
	texName  string
	mediaDir string
	noBackup bool
	timeout  string
	pandoc   string
	ruby     string
	quiet    bool
	verbose  bool
	version  bool
}

// newFlagSet builds the conversion flag set writing usage to w.
func newFlagSet(f *convertFlags, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("docx2tex", flag.ContinueOnError)
	fs.SetOutput(w)

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVar(&f.texName, "tex-name", "", "output .tex filename (default: <docx stem>.tex)")
	fs.StringVar(&f.mediaDir, "media-dir", "", "extracted media folder name (default: <docx stem>_media)")
	fs.BoolVar(&f.noBackup, "no-backup", false, "skip the .bak copy of a prior output")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-tool timeout (e.g. 30s, 2m; default: none)")
	fs.StringVar(&f.pandoc, "pandoc", "", "pandoc executable (default: pandoc)")
	fs.StringVar(&f.ruby, "ruby", "", "ruby executable (default: ruby)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(w, fs) }

	return fs
}

// parseFlags parses CLI arguments and returns flags plus positional args.
func parseFlags(args []string, errw io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet(f, errw)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// printUsage writes the full usage text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "docx2tex converts a Word .docx to LaTeX, replacing embedded")
	fmt.Fprintln(w, "MathType/OLE equations with native LaTeX math.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  docx2tex [flags] <input.docx> <out-dir>")
	fmt.Fprintln(w, "  docx2tex doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.PrintDefaults()
	fmt.Fprint(w, buf.String())
	fs.SetOutput(w)
}
