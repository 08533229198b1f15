package runesafe

import (
	"strings"
	"testing"
)

var escapeFlagCombos = []EscapeFlags{
	{},
	{Display: true},
	{ASCII: true},
	{Display: true, ASCII: true},
}

// TestEscape tests the escaped form of each unit rule under every flag
// combination. ASCII output is identical with and without Display because
// forcing ASCII rewrites every multi-byte character before the display rules
// apply.
func TestEscape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		plain   string
		display string
		ascii   string
	}{
		{"plain ascii", "hello", "hello", "hello", "hello"},
		{"newline", "hello\n", `hello\n`, `hello\n`, `hello\n`},
		{"all shorthands", "\a\b\t\n\v\f\r", `\a\b\t\n\v\f\r`, `\a\b\t\n\v\f\r`, `\a\b\t\n\v\f\r`},
		{"hex controls", "\x00\x1f\x7f", `\x00\x1f\x7f`, `\x00\x1f\x7f`, `\x00\x1f\x7f`},
		{"backslash is printable", `a\n`, `a\n`, `a\n`, `a\n`},
		{"latin accent", "café", "café", "café", `café`},
		{"cjk", "中", "中", "中", `中`},
		{"emoji", "\U0001f638", "\U0001f638", "\U0001f638​", `\U0001f638`},
		{"zero width space", "​", "​", "", `​`},
		{"combining mark", "é", "é", "e", `é`},
		{"soft hyphen", "co­op", "co­op", "coop", `co­op`},
		{"c1 control", "", ``, ``, ``},
		{"private use", "", ``, ``, ``},
		{"max code point", "\U0010ffff", `\U0010ffff`, `\U0010ffff`, `\U0010ffff`},
		{"lone invalid byte", "\xff", `\xff`, `\xff`, `\xff`},
		{"truncated after ascii", "a\xc2", `a\xc2`, `a\xc2`, `a\xc2`},
		{"truncated three byte", "\xe4\xb8", `\xe4\xb8`, `\xe4\xb8`, `\xe4\xb8`},
		{"control then emoji", "ab\x00\U0001f638", `ab\x00` + "\U0001f638", `ab\x00` + "\U0001f638​", `ab\x00\U0001f638`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := func(flags EscapeFlags, want string) {
				got, err := Escape([]byte(tt.input), flags)
				if err != nil {
					t.Fatalf("Escape(%q, %+v): %v", tt.input, flags, err)
				}
				if string(got) != want {
					t.Errorf("Escape(%q, %+v) = %q, want %q", tt.input, flags, got, want)
				}
			}
			check(EscapeFlags{}, tt.plain)
			check(EscapeFlags{Display: true}, tt.display)
			check(EscapeFlags{ASCII: true}, tt.ascii)
			check(EscapeFlags{Display: true, ASCII: true}, tt.ascii)
		})
	}
}

// TestEscapeFastPath tests that input needing no rewriting comes back as the
// original slice, not a copy.
func TestEscapeFastPath(t *testing.T) {
	inputs := []string{"hello", "café", "中文", "\U0001f638"}
	for _, s := range inputs {
		in := []byte(s)
		got, err := Escape(in, EscapeFlags{})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(in) || &got[0] != &in[0] {
			t.Errorf("Escape(%q) copied despite needing no rewriting", s)
		}
	}

	in := []byte("hello\n")
	got, err := Escape(in, EscapeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if &got[0] == &in[0] {
		t.Errorf("Escape(%q) returned the input slice for rewritten output", in)
	}
}

// TestEscapedSizeAgreement tests that the sizing pass and the emitting pass
// agree for every rule and flag combination.
func TestEscapedSizeAgreement(t *testing.T) {
	inputs := []string{
		"", "hello", "hello\n", "\x00\x1f\x7f", "café", "中",
		"\U0001f638", "​", "é", "", "\xff", "a\xc2",
		"\xe4\xb8", "ab\x00\U0001f638", "\xf0\x9f\x98", "\xed\xa0\x80",
	}
	for _, s := range inputs {
		for _, flags := range escapeFlagCombos {
			size, err := EscapedSize([]byte(s), flags)
			if err != nil {
				t.Fatalf("EscapedSize(%q, %+v): %v", s, flags, err)
			}
			out, err := Escape([]byte(s), flags)
			if err != nil {
				t.Fatalf("Escape(%q, %+v): %v", s, flags, err)
			}
			if len(out) != size {
				t.Errorf("EscapedSize(%q, %+v) = %d but Escape produced %d bytes", s, flags, size, len(out))
			}
		}

		size, err := EscapedSizeBytes([]byte(s))
		if err != nil {
			t.Fatalf("EscapedSizeBytes(%q): %v", s, err)
		}
		out, err := EscapeBytes([]byte(s))
		if err != nil {
			t.Fatalf("EscapeBytes(%q): %v", s, err)
		}
		if len(out) != size {
			t.Errorf("EscapedSizeBytes(%q) = %d but EscapeBytes produced %d bytes", s, size, len(out))
		}
	}
}

// TestEscapeIdempotent tests that escaping its own output changes nothing
// when display mode is off. Display mode is deliberately not idempotent: the
// zero width space it appends after emoji would be elided by a second pass.
func TestEscapeIdempotent(t *testing.T) {
	inputs := []string{
		"hello\n", "café", "\U0001f638", "​", "",
		"\xff", "\xe4\xb8", "ab\x00\U0001f638", `already é escaped`,
	}
	for _, s := range inputs {
		for _, flags := range []EscapeFlags{{}, {ASCII: true}} {
			once, err := Escape([]byte(s), flags)
			if err != nil {
				t.Fatal(err)
			}
			twice, err := Escape(once, flags)
			if err != nil {
				t.Fatal(err)
			}
			if string(twice) != string(once) {
				t.Errorf("Escape(%q, %+v) not idempotent: %q then %q", s, flags, once, twice)
			}
		}
	}
}

// TestEscapeBytes tests byte mode: no decoding, printable ASCII preserved,
// every other byte escaped individually.
func TestEscapeBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"newline", "a\nb", `a\nb`},
		{"latin accent bytes", "café", `caf\xc3\xa9`},
		{"emoji bytes", "\U0001f638", `\xf0\x9f\x98\xb8`},
		{"invalid byte", "\xff", `\xff`},
		{"nul and del", "\x00\x7f", `\x00\x7f`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EscapeBytes([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("EscapeBytes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	in := []byte("plain")
	got, err := EscapeBytes(in)
	if err != nil {
		t.Fatal(err)
	}
	if &got[0] != &in[0] {
		t.Error("EscapeBytes copied printable input")
	}
}

// TestEscaperReuse tests the scratch buffer contract: results stay valid only
// until the next call, which reuses the same backing storage when it fits.
func TestEscaperReuse(t *testing.T) {
	var e Escaper

	first, err := e.Escape([]byte("a\nb\tc"), EscapeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != `a\nb\tc` {
		t.Fatalf("first escape = %q", first)
	}

	second, err := e.Escape([]byte("x\ny"), EscapeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if string(second) != `x\ny` {
		t.Fatalf("second escape = %q", second)
	}
	if &first[0] != &second[0] {
		t.Error("second escape did not reuse the scratch buffer")
	}

	clean, err := e.Escape([]byte("plain"), EscapeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if string(clean) != "plain" {
		t.Fatalf("clean escape = %q", clean)
	}
	if string(second) != `x\ny` {
		t.Error("clean input overwrote the scratch buffer")
	}
}

// TestEscapeDisplayWidth tests that display-escaped output occupies exactly
// the measured width of the input: ignorables vanish, emoji gain a zero width
// pad, and nothing else moves.
func TestEscapeDisplayWidth(t *testing.T) {
	inputs := []string{
		"hello", "café", "é", "\U0001f638", "中文",
		"a​b", "co­op", "ok: 中 \U0001f638!",
	}
	for _, s := range inputs {
		out, err := Escape([]byte(s), EscapeFlags{Display: true})
		if err != nil {
			t.Fatal(err)
		}
		if got, want := Width(out), WidthString(s); got != want {
			t.Errorf("Width(Escape(%q, display)) = %d, want %d", s, got, want)
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	inputs := map[string]string{
		"clean":     strings.Repeat("the quick brown fox ", 50),
		"controls":  strings.Repeat("line one\nline\ttwo\x00", 50),
		"cjk_ascii": strings.Repeat("漢字と仮名", 50),
		"malformed": strings.Repeat("ab\xff\xc2", 50),
	}

	for name, input := range inputs {
		data := []byte(input)
		flags := EscapeFlags{}
		if name == "cjk_ascii" {
			flags = EscapeFlags{ASCII: true}
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out, err := Escape(data, flags)
				if err != nil {
					b.Fatal(err)
				}
				_ = out
			}
		})
	}
}

func BenchmarkEscaperReuse(b *testing.B) {
	data := []byte(strings.Repeat("line one\nline\ttwo\x00", 50))
	var e Escaper

	// Warm up the scratch buffer
	if _, err := e.Escape(data, EscapeFlags{}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		out, err := e.Escape(data, EscapeFlags{})
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}
