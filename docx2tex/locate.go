package docx2tex

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// XML namespaces used by the WordprocessingML document body.
const (
	nsWord   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsVML    = "urn:schemas-microsoft-com:vml"
	nsOffice = "urn:schemas-microsoft-com:office:office"
	nsRels   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// relationships mirrors word/_rels/document.xml.rels.
type relationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// parseRels maps relationship ids to their targets.
func parseRels(doc *Document) (map[string]string, error) {
	data, err := doc.ReadPart(partRels)
	if err != nil {
		return nil, err
	}

	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidDocument, partRels, err)
	}

	m := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		if rel.ID != "" && rel.Target != "" {
			m[rel.ID] = rel.Target
		}
	}
	return m, nil
}

// anchorRef is one w:object pairing a preview image with an OLE blob,
// collected while walking a paragraph.
type anchorRef struct {
	imageRID string
	oleRID   string
}

// LocateEquations scans the document body for embedded-object anchors and
// resolves each one to an EmbeddedEquation. An anchor whose relationship or
// embeddings part is absent aborts the scan with ErrMissingPart: a partial
// equation set would corrupt the final document.
//
// Objects that are not equation anchors (no paired imagedata + OLEObject)
// are ignored.
func LocateEquations(doc *Document) ([]EmbeddedEquation, error) {
	rels, err := parseRels(doc)
	if err != nil {
		return nil, err
	}

	body, err := doc.ReadPart(partBody)
	if err != nil {
		return nil, err
	}

	var (
		equations []EmbeddedEquation
		byID      = make(map[string]string) // placeholder id -> OLE part

		inParagraph bool
		inText      bool
		paraText    strings.Builder
		anchors     []anchorRef
		current     *anchorRef
	)

	flushParagraph := func() error {
		text := paraText.String()
		for _, a := range anchors {
			eq, err := resolveAnchor(doc, rels, a, text)
			if err != nil {
				return err
			}
			if eq == nil {
				continue
			}
			if prev, seen := byID[eq.PlaceholderID]; seen {
				if prev != eq.OLEPart {
					return fmt.Errorf("%w: duplicate placeholder %s", ErrInvalidDocument, eq.PlaceholderID)
				}
				continue // same equation referenced twice
			}
			byID[eq.PlaceholderID] = eq.OLEPart
			equations = append(equations, *eq)
		}
		paraText.Reset()
		anchors = anchors[:0]
		return nil
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidDocument, partBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Space == nsWord && t.Name.Local == "p":
				inParagraph = true
			case t.Name.Space == nsWord && t.Name.Local == "t":
				inText = inParagraph
			case t.Name.Space == nsWord && t.Name.Local == "object":
				current = &anchorRef{}
			case t.Name.Space == nsVML && t.Name.Local == "imagedata":
				if current != nil {
					current.imageRID = relAttr(t)
				}
			case t.Name.Space == nsOffice && t.Name.Local == "OLEObject":
				if current != nil {
					current.oleRID = relAttr(t)
				}
			}

		case xml.CharData:
			if inText {
				paraText.Write(t)
			}

		case xml.EndElement:
			switch {
			case t.Name.Space == nsWord && t.Name.Local == "p":
				if err := flushParagraph(); err != nil {
					return nil, err
				}
				inParagraph = false
			case t.Name.Space == nsWord && t.Name.Local == "t":
				inText = false
			case t.Name.Space == nsWord && t.Name.Local == "object":
				if current != nil && current.imageRID != "" && current.oleRID != "" {
					anchors = append(anchors, *current)
				}
				current = nil
			}
		}
	}

	return equations, nil
}

// resolveAnchor turns an anchor into an EmbeddedEquation, reading the OLE
// payload from the archive. Returns (nil, nil) for anchors whose image
// relationship points at something other than a file target.
func resolveAnchor(doc *Document, rels map[string]string, a anchorRef, paragraphText string) (*EmbeddedEquation, error) {
	imgTarget, ok := rels[a.imageRID]
	if !ok {
		return nil, fmt.Errorf("%w: relationship %s", ErrMissingPart, a.imageRID)
	}
	oleTarget, ok := rels[a.oleRID]
	if !ok {
		return nil, fmt.Errorf("%w: relationship %s", ErrMissingPart, a.oleRID)
	}

	placeholder := path.Base(imgTarget)
	olePart := path.Base(oleTarget)
	if placeholder == "" || olePart == "" {
		return nil, nil
	}

	payload, err := doc.ReadPart(embeddingsDir + olePart)
	if err != nil {
		return nil, err
	}

	return &EmbeddedEquation{
		PlaceholderID: placeholder,
		OLEPart:       olePart,
		Payload:       payload,
		ParagraphText: paragraphText,
	}, nil
}

// relAttr extracts the r:id attribute from an element.
func relAttr(el xml.StartElement) string {
	for _, attr := range el.Attr {
		if attr.Name.Space == nsRels && attr.Name.Local == "id" {
			return attr.Value
		}
	}
	return ""
}
