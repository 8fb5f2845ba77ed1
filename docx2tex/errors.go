package docx2tex

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrInvalidDocument means the input archive is unreadable or missing
	// required parts (word/document.xml, relationships).
	ErrInvalidDocument = errors.New("invalid docx document")

	// ErrMissingPart means the document body references an archive part
	// (embedding or image) that is absent from the archive.
	ErrMissingPart = errors.New("referenced part missing from archive")

	// ErrConversion means an equation conversion stage failed. The wrapped
	// message names the placeholder id and the failing stage.
	ErrConversion = errors.New("equation conversion failed")

	// ErrExternalTool means a required external tool is missing or exited
	// non-zero (pandoc, ruby).
	ErrExternalTool = errors.New("external tool failed")

	// Bijection violations between placeholders and fragments.
	ErrUnresolvedPlaceholder = errors.New("placeholder has no converted fragment")
	ErrOrphanFragment        = errors.New("fragment has no placeholder in output")

	// ErrBackupWrite means the .bak copy of a prior output failed; the run
	// stops before anything is overwritten.
	ErrBackupWrite = errors.New("backup write failed")

	// Input validation errors.
	ErrEmptyDocxPath  = errors.New("docx path cannot be empty")
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")
	ErrNotDocx        = errors.New("input must be a .docx file")
)
