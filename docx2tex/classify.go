package docx2tex

import "strings"

// Mode distinguishes inline math from display math.
type Mode int

const (
	// ModeInline renders math within a line of running text: \( .. \).
	ModeInline Mode = iota
	// ModeDisplay renders math on its own line: \[ .. \].
	ModeDisplay
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	if m == ModeDisplay {
		return "display"
	}
	return "inline"
}

// Classify decides the math mode for an equation from its enclosing
// paragraph text: a paragraph that is empty or whitespace-only apart from
// the equation itself is display math, anything else is inline.
//
// This is a heuristic, not a typographic guarantee: a paragraph holding
// only the equation and trailing punctuation classifies as inline.
func Classify(paragraphText string) Mode {
	if strings.TrimSpace(paragraphText) == "" {
		return ModeDisplay
	}
	return ModeInline
}

// wrapMath wraps converted LaTeX in the delimiters for mode. Pandoc emits
// MathML conversions as display blocks; the surrounding \[ \] is stripped
// before re-wrapping so inline fragments do not force a line break.
func wrapMath(latex string, mode Mode) string {
	s := strings.TrimSpace(latex)
	hasDisplay := strings.HasPrefix(s, `\[`) && strings.HasSuffix(s, `\]`)

	if mode == ModeInline {
		if hasDisplay {
			s = strings.TrimSpace(s[2 : len(s)-2])
		}
		return `\(` + s + `\)`
	}

	if hasDisplay {
		return s
	}
	return `\[` + s + `\]`
}
