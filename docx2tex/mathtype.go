package docx2tex

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/canxin121/Introduction-to-Quantum-Information/internal/fileutil"
)

// rubyProgram converts a MathType OLE blob (path in ARGV[0]) to MathML on
// stdout using the mathtype_to_mathml_plus gem.
const rubyProgram = `require 'mathtype_to_mathml_plus'; print MathTypeToMathMLPlus::Converter.new(ARGV[0]).convert`

// Conversion stage names, used in ErrConversion messages.
const (
	stageOLEToMathML = "ole-to-mathml"
	stageValidate    = "mathml-validate"
	stageMathMLToTeX = "mathml-to-latex"
)

// equationConverter turns one EmbeddedEquation into a MathFragment.
type equationConverter interface {
	Convert(ctx context.Context, eq EmbeddedEquation) (MathFragment, error)
}

// mathTypeConverter runs the three-stage external chain: OLE binary to
// MathML via ruby, MathML well-formedness check, MathML to LaTeX via
// pandoc. Conversions are cached per OLE part within a run, so an equation
// embedded several times is converted once.
type mathTypeConverter struct {
	runner CommandRunner
	ruby   string
	pandoc string
	cache  map[string]string // OLE part -> LaTeX
}

func newMathTypeConverter(runner CommandRunner, ruby, pandoc string) *mathTypeConverter {
	return &mathTypeConverter{
		runner: runner,
		ruby:   ruby,
		pandoc: pandoc,
		cache:  make(map[string]string),
	}
}

// Convert runs the conversion chain for one equation. The first failing
// stage aborts with ErrConversion tagged with the placeholder id and stage
// name. Temporary files are removed on all exit paths.
func (c *mathTypeConverter) Convert(ctx context.Context, eq EmbeddedEquation) (MathFragment, error) {
	latex, ok := c.cache[eq.OLEPart]
	if !ok {
		mathml, err := c.oleToMathML(ctx, eq)
		if err != nil {
			return MathFragment{}, err
		}

		if err := validateMathML(mathml); err != nil {
			return MathFragment{}, conversionError(eq, stageValidate, "", err)
		}

		latex, err = c.mathMLToLaTeX(ctx, eq, mathml)
		if err != nil {
			return MathFragment{}, err
		}
		c.cache[eq.OLEPart] = latex
	}

	return MathFragment{
		PlaceholderID: eq.PlaceholderID,
		LaTeX:         latex,
		Mode:          Classify(eq.ParagraphText),
	}, nil
}

// oleToMathML writes the OLE payload to a temp file and converts it to
// MathML with ruby.
func (c *mathTypeConverter) oleToMathML(ctx context.Context, eq EmbeddedEquation) (string, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(eq.Payload, "docx2tex-ole-*.bin")
	if err != nil {
		return "", conversionError(eq, stageOLEToMathML, "", err)
	}
	defer cleanup()

	stdout, stderr, err := c.runner.Run(ctx, "", c.ruby, "-e", rubyProgram, tmpPath)
	if err != nil {
		return "", conversionError(eq, stageOLEToMathML, stderr, err)
	}
	return stdout, nil
}

// mathMLToLaTeX wraps the MathML in a minimal HTML document and converts it
// to LaTeX with pandoc.
func (c *mathTypeConverter) mathMLToLaTeX(ctx context.Context, eq EmbeddedEquation, mathml string) (string, error) {
	doc := "<html><body>" + mathml + "</body></html>"

	tmpPath, cleanup, err := fileutil.WriteTempFile([]byte(doc), "docx2tex-mathml-*.html")
	if err != nil {
		return "", conversionError(eq, stageMathMLToTeX, "", err)
	}
	defer cleanup()

	stdout, stderr, err := c.runner.Run(ctx, "", c.pandoc, "-f", "html", "-t", "latex", tmpPath)
	if err != nil {
		return "", conversionError(eq, stageMathMLToTeX, stderr, err)
	}
	return strings.TrimSpace(stdout), nil
}

// validateMathML checks that the intermediate converter output is parseable
// markup containing a <math> element. Ruby exits zero even when it prints
// an error page, so the output itself is the contract.
func validateMathML(mathml string) error {
	if strings.TrimSpace(mathml) == "" {
		return fmt.Errorf("empty converter output")
	}

	doc, err := html.Parse(strings.NewReader("<html><body>" + mathml + "</body></html>"))
	if err != nil {
		return fmt.Errorf("parsing converter output: %w", err)
	}

	if !hasMathElement(doc) {
		return fmt.Errorf("no <math> element in converter output")
	}
	return nil
}

// hasMathElement reports whether the node tree contains a <math> element.
func hasMathElement(n *html.Node) bool {
	if n.Type == html.ElementNode && n.Data == "math" {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasMathElement(c) {
			return true
		}
	}
	return false
}

// conversionError builds an ErrConversion naming the placeholder and stage.
func conversionError(eq EmbeddedEquation, stage, stderr string, err error) error {
	if stderr = strings.TrimSpace(stderr); stderr != "" {
		return fmt.Errorf("%w: %s: stage %s: %s: %v", ErrConversion, eq.PlaceholderID, stage, stderr, err)
	}
	return fmt.Errorf("%w: %s: stage %s: %v", ErrConversion, eq.PlaceholderID, stage, err)
}
