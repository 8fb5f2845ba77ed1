package docx2tex

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mode
	}{
		{name: "empty paragraph is display", text: "", want: ModeDisplay},
		{name: "whitespace-only is display", text: " \t\n  ", want: ModeDisplay},
		{name: "single non-space character is inline", text: "x", want: ModeInline},
		{name: "text before placeholder is inline", text: "see equation ", want: ModeInline},
		{name: "text after placeholder is inline", text: " below", want: ModeInline},
		{name: "trailing punctuation only is inline", text: ".", want: ModeInline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeInline.String() != "inline" {
		t.Errorf("ModeInline.String() = %q", ModeInline.String())
	}
	if ModeDisplay.String() != "display" {
		t.Errorf("ModeDisplay.String() = %q", ModeDisplay.String())
	}
}

func TestWrapMath(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		mode  Mode
		want  string
	}{
		{
			name:  "inline wraps in parens",
			latex: "x^2",
			mode:  ModeInline,
			want:  `\(x^2\)`,
		},
		{
			name:  "inline strips display delimiters",
			latex: `\[x^2\]`,
			mode:  ModeInline,
			want:  `\(x^2\)`,
		},
		{
			name:  "inline trims whitespace",
			latex: "  \\[ x^2 \\]\n",
			mode:  ModeInline,
			want:  `\(x^2\)`,
		},
		{
			name:  "display wraps in brackets",
			latex: "E = mc^2",
			mode:  ModeDisplay,
			want:  `\[E = mc^2\]`,
		},
		{
			name:  "display keeps existing delimiters",
			latex: `\[E = mc^2\]`,
			mode:  ModeDisplay,
			want:  `\[E = mc^2\]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapMath(tt.latex, tt.mode); got != tt.want {
				t.Errorf("wrapMath(%q, %v) = %q, want %q", tt.latex, tt.mode, got, tt.want)
			}
		})
	}
}
