package dedup

import "testing"

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Deep Learning in Healthcare",
			expected: "deep learning in healthcare",
		},
		{
			name:     "collapses inner whitespace",
			input:    "Deep learning  in healthcare ",
			expected: "deep learning in healthcare",
		},
		{
			name:     "trims leading and trailing",
			input:    "  A Title  ",
			expected: "a title",
		},
		{
			name:     "tabs and newlines collapse",
			input:    "A\tTitle\nAcross Lines",
			expected: "a title across lines",
		},
		{
			name:     "absent title",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeTitle(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Deep Learning in Healthcare",
		"  Mixed   CASE \t title ",
		"",
		"already normalized",
	}

	for _, in := range inputs {
		once := NormalizeTitle(in)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
