package runesafe

import (
	"strings"
	"testing"
)

// TestWidth tests column measurement over plain, wide, combining, and
// malformed input.
func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"ascii with newline", "hello\n", 5},
		{"tab and nul", "a\tb\x00c", 3},
		{"latin accents", "café", 4},
		{"combining mark", "é", 1},
		{"cjk", "中文", 4},
		{"fullwidth", "ＡＢ", 4},
		{"ideographic space", "　", 2},
		{"emoji", "\U0001f638", 2},
		{"emoji with selector", "⚡️", 2},
		{"zero width space", "a​b", 2},
		{"soft hyphen", "co­op", 4},
		{"ambiguous", "§€", 2},
		{"mixed", "ok: 中 \U0001f638!", 10},
		{"lone invalid byte", "\xff", 0},
		{"invalid between ascii", "a\xffb", 2},
		{"truncated sequence", "\xe4\xb8", 0},
		{"truncated at eof", "ab\xc2", 2},
		{"stray continuations", "\x80\x80\x80", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width([]byte(tt.input)); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if got := WidthString(tt.input); got != tt.want {
				t.Errorf("WidthString(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestWidthAdditive tests that measuring a concatenation equals the sum of
// measuring the parts.
func TestWidthAdditive(t *testing.T) {
	parts := []string{
		"hello",
		"中文",
		"\xff\xfe",
		"é",
		"\U0001f638",
		"",
		"ab\xc2",
	}
	for _, left := range parts {
		for _, right := range parts {
			sum := WidthString(left) + WidthString(right)
			if got := WidthString(left + right); got != sum {
				t.Errorf("WidthString(%q + %q) = %d, want %d", left, right, got, sum)
			}
		}
	}
}

func BenchmarkWidth(b *testing.B) {
	inputs := map[string]string{
		"ascii":     strings.Repeat("the quick brown fox ", 50),
		"cjk":       strings.Repeat("漢字と仮名", 50),
		"mixed":     strings.Repeat("ok: 中 \U0001f638! ", 50),
		"malformed": strings.Repeat("ab\xff\xc2", 50),
	}

	for name, input := range inputs {
		data := []byte(input)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Width(data)
			}
		})
	}
}
