package utils

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain string untouched", "Sholay", "Sholay"},
		{"leading and trailing whitespace trimmed", "  Sholay  ", "Sholay"},
		{"tag characters stripped", "<b>Bad</b>", "bBad/b"},
		{"script tag reduced to text", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"inner whitespace preserved", " The Final Cut ", "The Final Cut"},
		{"only brackets", "<>", ""},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"angle brackets inside word", "a<b>c", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
