package docx2tex

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockCall records one Run invocation.
type mockCall struct {
	dir  string
	name string
	args []string
}

// mockRunner scripts command results by executable name.
type mockRunner struct {
	calls       []mockCall
	lookPathErr map[string]error

	// onRun decides the result of each invocation; the default succeeds
	// with empty output.
	onRun func(call mockCall) (stdout, stderr string, err error)
}

func (m *mockRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	call := mockCall{dir: dir, name: name, args: args}
	m.calls = append(m.calls, call)
	if m.onRun != nil {
		return m.onRun(call)
	}
	return "", "", nil
}

func (m *mockRunner) LookPath(name string) error {
	if m.lookPathErr != nil {
		return m.lookPathErr[name]
	}
	return nil
}

// countCalls returns how many recorded calls ran the named executable.
func (m *mockRunner) countCalls(name string) int {
	n := 0
	for _, c := range m.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func testEquation(text string) EmbeddedEquation {
	return EmbeddedEquation{
		PlaceholderID: "image1.wmf",
		OLEPart:       "oleObject1.bin",
		Payload:       []byte("OLE"),
		ParagraphText: text,
	}
}

// chainRunner scripts the happy path: ruby emits MathML, pandoc emits LaTeX.
func chainRunner(mathml, latex string) *mockRunner {
	return &mockRunner{
		onRun: func(call mockCall) (string, string, error) {
			if call.name == "ruby" {
				return mathml, "", nil
			}
			return latex, "", nil
		},
	}
}

func TestMathTypeConverterConvert(t *testing.T) {
	runner := chainRunner("<math><mi>x</mi></math>", "\\[x\\]\n")
	conv := newMathTypeConverter(runner, "ruby", "pandoc")

	fragment, err := conv.Convert(context.Background(), testEquation(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fragment.PlaceholderID != "image1.wmf" {
		t.Errorf("placeholder = %q", fragment.PlaceholderID)
	}
	if fragment.LaTeX != `\[x\]` {
		t.Errorf("latex = %q", fragment.LaTeX)
	}
	if fragment.Mode != ModeDisplay {
		t.Errorf("mode = %v, want display", fragment.Mode)
	}
	if fragment.Wrapped() != `\[x\]` {
		t.Errorf("wrapped = %q", fragment.Wrapped())
	}

	// One ruby call, one pandoc call.
	if got := runner.countCalls("ruby"); got != 1 {
		t.Errorf("ruby calls = %d", got)
	}
	if got := runner.countCalls("pandoc"); got != 1 {
		t.Errorf("pandoc calls = %d", got)
	}
}

func TestMathTypeConverterInlineMode(t *testing.T) {
	runner := chainRunner("<math><mi>x</mi></math>", `\[x\]`)
	conv := newMathTypeConverter(runner, "ruby", "pandoc")

	fragment, err := conv.Convert(context.Background(), testEquation("see X below"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fragment.Mode != ModeInline {
		t.Errorf("mode = %v, want inline", fragment.Mode)
	}
	if fragment.Wrapped() != `\(x\)` {
		t.Errorf("wrapped = %q", fragment.Wrapped())
	}
}

func TestMathTypeConverterRubyFailure(t *testing.T) {
	runner := &mockRunner{
		onRun: func(call mockCall) (string, string, error) {
			if call.name == "ruby" {
				return "", "cannot parse OLE", errors.New("exit status 1")
			}
			return "", "", nil
		},
	}
	conv := newMathTypeConverter(runner, "ruby", "pandoc")

	_, err := conv.Convert(context.Background(), testEquation(""))
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
	for _, want := range []string{"image1.wmf", stageOLEToMathML, "cannot parse OLE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestMathTypeConverterMalformedMathML(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "empty output", output: "   \n"},
		{name: "no math element", output: "<p>MathType::Converter error</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := chainRunner(tt.output, `\[x\]`)
			conv := newMathTypeConverter(runner, "ruby", "pandoc")

			_, err := conv.Convert(context.Background(), testEquation(""))
			if !errors.Is(err, ErrConversion) {
				t.Fatalf("expected ErrConversion, got %v", err)
			}
			if !strings.Contains(err.Error(), stageValidate) {
				t.Errorf("error %q does not name the validate stage", err)
			}
			// Pandoc must not run after a failed validation.
			if got := runner.countCalls("pandoc"); got != 0 {
				t.Errorf("pandoc calls = %d, want 0", got)
			}
		})
	}
}

func TestMathTypeConverterPandocFailure(t *testing.T) {
	runner := &mockRunner{
		onRun: func(call mockCall) (string, string, error) {
			if call.name == "ruby" {
				return "<math/>", "", nil
			}
			return "", "bad html", errors.New("exit status 2")
		},
	}
	conv := newMathTypeConverter(runner, "ruby", "pandoc")

	_, err := conv.Convert(context.Background(), testEquation(""))
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
	if !strings.Contains(err.Error(), stageMathMLToTeX) {
		t.Errorf("error %q does not name the latex stage", err)
	}
}

func TestMathTypeConverterCachesByOLEPart(t *testing.T) {
	runner := chainRunner("<math/>", "x")
	conv := newMathTypeConverter(runner, "ruby", "pandoc")

	// Two occurrences of the same OLE part under different placeholders.
	eq1 := testEquation("")
	eq2 := testEquation("inline context")
	eq2.PlaceholderID = "image2.wmf"

	frag1, err := conv.Convert(context.Background(), eq1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frag2, err := conv.Convert(context.Background(), eq2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := runner.countCalls("ruby"); got != 1 {
		t.Errorf("ruby calls = %d, want 1 (cached)", got)
	}
	if frag1.Mode != ModeDisplay || frag2.Mode != ModeInline {
		t.Error("modes must follow each occurrence's paragraph, not the cache")
	}
}

func TestValidateMathML(t *testing.T) {
	if err := validateMathML(`<math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi></math>`); err != nil {
		t.Errorf("valid MathML rejected: %v", err)
	}
	if err := validateMathML("<div>no math here</div>"); err == nil {
		t.Error("expected error for output without <math>")
	}
}
