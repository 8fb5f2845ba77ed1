// Package docx2tex converts a Word .docx document to a LaTeX file while
// replacing embedded MathType/OLE equation objects with native LaTeX math.
//
// Pandoc renders equation objects as \includegraphics references to their
// preview images (usually WMF/EMF metafiles). Instead of rasterizing those
// previews, the pipeline extracts the paired OLE equation blobs from the
// docx archive, converts each one to MathML with the Ruby gem
// mathtype_to_mathml_plus, converts the MathML to LaTeX with pandoc, and
// substitutes the result for the image reference in the generated .tex.
//
// Basic usage:
//
//	svc := docx2tex.New()
//	res, err := svc.Convert(ctx, docx2tex.Input{
//		DocxPath:  "notes.docx",
//		OutputDir: "out",
//	})
//
// The pipeline is strict: a single failed equation conversion, a missing
// archive part, or a mismatch between image placeholders and converted
// fragments aborts the run. A document with half its equations converted is
// worse than no document at all.
package docx2tex
