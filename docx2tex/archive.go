package docx2tex

import (
	"archive/zip"
	"fmt"
	"io"
)

// Archive part names inside a .docx package.
const (
	partBody      = "word/document.xml"
	partRels      = "word/_rels/document.xml.rels"
	embeddingsDir = "word/embeddings/"
)

// Document provides read-only access to the named internal parts of a
// .docx archive. The input file is never mutated.
type Document struct {
	rc    *zip.ReadCloser
	parts map[string]*zip.File
}

// OpenDocument opens a .docx package and verifies the parts every Word
// document must carry. Returns ErrInvalidDocument if the archive is
// unreadable or a required part is absent.
func OpenDocument(path string) (*Document, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}

	d := &Document{rc: rc, parts: make(map[string]*zip.File, len(rc.File))}
	for _, f := range rc.File {
		d.parts[f.Name] = f
	}

	for _, name := range []string{partBody, partRels} {
		if _, ok := d.parts[name]; !ok {
			_ = rc.Close()
			return nil, fmt.Errorf("%w: missing part %s", ErrInvalidDocument, name)
		}
	}

	return d, nil
}

// Close releases the underlying archive.
func (d *Document) Close() error {
	return d.rc.Close()
}

// HasPart reports whether a named part exists in the archive.
func (d *Document) HasPart(name string) bool {
	_, ok := d.parts[name]
	return ok
}

// ReadPart returns the full content of a named part.
// Returns ErrMissingPart if the part does not exist.
func (d *Document) ReadPart(name string) ([]byte, error) {
	f, ok := d.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}

	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrInvalidDocument, name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidDocument, name, err)
	}
	return data, nil
}
