package main

import (
	"context"
	"fmt"
	"io"

	docx2tex "github.com/canxin121/Introduction-to-Quantum-Information/docx2tex"
	"github.com/canxin121/Introduction-to-Quantum-Information/internal/config"
)

// run dispatches subcommands, executes a conversion, and returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "doctor" {
		return runDoctorCmd(args[1:], stdout)
	}

	flags, positional, err := parseFlags(args, stderr)
	if err != nil {
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(stdout, "docx2tex %s\n", Version)
		return ExitSuccess
	}

	if len(positional) != 2 {
		fmt.Fprintln(stderr, ErrUsage)
		return ExitUsage
	}

	err = convert(context.Background(), flags, positional[0], positional[1], stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "docx2tex:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// convert builds the service from config and flags and runs the pipeline.
func convert(ctx context.Context, flags *convertFlags, docxPath, outDir string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}

	timeout, err := cfg.ParseTimeout()
	if err != nil {
		return err
	}

	opts := []docx2tex.Option{
		docx2tex.WithPandoc(firstNonEmpty(flags.pandoc, cfg.Tools.Pandoc)),
		docx2tex.WithRuby(firstNonEmpty(flags.ruby, cfg.Tools.Ruby)),
	}
	if timeout > 0 {
		opts = append(opts, docx2tex.WithTimeout(timeout))
	}
	svc := docx2tex.New(opts...)

	if flags.verbose {
		fmt.Fprintln(stderr, "checking external tools...")
	}
	if err := svc.CheckTools(ctx); err != nil {
		return err
	}

	input := docx2tex.Input{
		DocxPath:  docxPath,
		OutputDir: outDir,
		TexName:   flags.texName,
		MediaDir:  flags.mediaDir,
		NoBackup:  flags.noBackup || !cfg.Output.Backup,
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "converting %s\n", docxPath)
	}
	res, err := svc.Convert(ctx, input)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintln(stdout, "done")
		fmt.Fprintf(stdout, "- tex: %s\n", res.TexPath)
		fmt.Fprintf(stdout, "- media: %s\n", res.MediaDir)
		if res.BackupPath != "" {
			fmt.Fprintf(stdout, "- backup: %s\n", res.BackupPath)
		}
		fmt.Fprintf(stdout, "- equation objects: %d\n", res.Equations)
		fmt.Fprintf(stdout, "- replaced references: %d\n", res.Replaced)
	}
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
