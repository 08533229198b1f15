package runesafe

import (
	"errors"
	"testing"
)

// TestScan tests sequence scanning over well-formed and malformed leads.
func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		ok    bool
	}{
		{"empty", "", 0, false},
		{"ascii", "a", 1, true},
		{"nul", "\x00", 1, true},
		{"del", "\x7f", 1, true},
		{"two byte", "é", 2, true},
		{"three byte", "中", 3, true},
		{"four byte", "\U0001f638", 4, true},
		{"ascii prefix", "abc", 1, true},
		{"stray continuation", "\x80", 0, false},
		{"invalid lead fe", "\xfe", 0, false},
		{"invalid lead ff", "\xff", 0, false},
		{"overlong two byte", "\xc0\x80", 0, false},
		{"overlong c1", "\xc1\xbf", 0, false},
		{"overlong three byte", "\xe0\x80\x80", 0, false},
		{"overlong four byte", "\xf0\x80\x80\x80", 0, false},
		{"surrogate low bound", "\xed\xa0\x80", 0, false},
		{"surrogate high bound", "\xed\xbf\xbf", 0, false},
		{"beyond max rune", "\xf4\x90\x80\x80", 0, false},
		{"truncated two byte", "\xc2", 0, false},
		{"truncated three byte", "\xe4\xb8", 0, false},
		{"truncated four byte", "\xf0\x9f\x98", 0, false},
		{"broken continuation", "\xc2\x41", 0, false},
		{"max rune", "\U0010ffff", 4, true},
		{"max two byte", "߿", 2, true},
		{"min three byte", "ࠀ", 3, true},
		{"before surrogates", "퟿", 3, true},
		{"after surrogates", "", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Scan([]byte(tt.input))
			if n != tt.n || ok != tt.ok {
				t.Errorf("Scan(%q) = %d, %v, want %d, %v", tt.input, n, ok, tt.n, tt.ok)
			}
			n, ok = ScanString(tt.input)
			if n != tt.n || ok != tt.ok {
				t.Errorf("ScanString(%q) = %d, %v, want %d, %v", tt.input, n, ok, tt.n, tt.ok)
			}
		})
	}
}

// TestDecode tests code point assembly for every sequence length.
func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		r     rune
		n     int
		ok    bool
	}{
		{"ascii", "a", 'a', 1, true},
		{"nul", "\x00", 0, 1, true},
		{"two byte", "é", 0x00e9, 2, true},
		{"three byte", "中", 0x4e2d, 3, true},
		{"four byte", "\U0001f638", 0x1f638, 4, true},
		{"max rune", "\U0010ffff", 0x10ffff, 4, true},
		{"empty", "", 0, 0, false},
		{"stray continuation", "\x80", 0, 0, false},
		{"truncated", "\xc2", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, ok := Decode([]byte(tt.input))
			if r != tt.r || n != tt.n || ok != tt.ok {
				t.Errorf("Decode(%q) = %#x, %d, %v, want %#x, %d, %v", tt.input, r, n, ok, tt.r, tt.n, tt.ok)
			}
			r, n, ok = DecodeString(tt.input)
			if r != tt.r || n != tt.n || ok != tt.ok {
				t.Errorf("DecodeString(%q) = %#x, %d, %v, want %#x, %d, %v", tt.input, r, n, ok, tt.r, tt.n, tt.ok)
			}
		})
	}
}

// TestValidate tests whole-buffer validation and first-error offsets.
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		b      byte
	}{
		{"empty", "", -1, 0},
		{"ascii", "hello\n", -1, 0},
		{"mixed", "café 中文 \U0001f638", -1, 0},
		{"nul", "a\x00b", -1, 0},
		{"invalid at start", "\xff", 0, 0xff},
		{"invalid after ascii", "ab\x80cd", 2, 0x80},
		{"truncated at eof", "ab\xc2", 2, 0xc2},
		{"surrogate mid string", "a\xed\xa0\x80b", 1, 0xed},
		{"overlong mid string", "ab\xc0\xafcd", 2, 0xc0},
		{"second sequence bad", "é\xf5", 2, 0xf5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := func(err error, valid bool, fn string) {
				if tt.offset < 0 {
					if err != nil || !valid {
						t.Errorf("%s(%q): unexpected error %v", fn, tt.input, err)
					}
					return
				}
				if valid {
					t.Errorf("%s(%q): reported valid", fn, tt.input)
				}
				var invalid *InvalidUTF8Error
				if !errors.As(err, &invalid) {
					t.Fatalf("%s(%q): error %T, want *InvalidUTF8Error", fn, tt.input, err)
				}
				if invalid.Offset != tt.offset || invalid.Byte != tt.b {
					t.Errorf("%s(%q): offset %d byte %#02x, want offset %d byte %#02x",
						fn, tt.input, invalid.Offset, invalid.Byte, tt.offset, tt.b)
				}
			}
			check(Validate([]byte(tt.input)), Valid([]byte(tt.input)), "Validate")
			check(ValidateString(tt.input), ValidString(tt.input), "ValidateString")
		})
	}
}

// TestInvalidUTF8ErrorMessage tests the error text carries the byte and offset.
func TestInvalidUTF8ErrorMessage(t *testing.T) {
	err := Validate([]byte("ab\xffcd"))
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "invalid UTF-8 byte 0xff at offset 2"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

// TestScanNeverOverruns tests that scanning a malformed sequence never
// consumes past the offending byte: re-validating from the reported offset
// plus one must make progress through the rest of the buffer.
func TestScanNeverOverruns(t *testing.T) {
	inputs := []string{
		"\xe4\xb8",
		"\xf0\x9f\x98",
		"\xed\xa0\x80end",
		"\xc2\xc2\xa9",
	}
	for _, s := range inputs {
		b := []byte(s)
		steps := 0
		for i := 0; i < len(b); {
			n, ok := Scan(b[i:])
			if !ok {
				n = 1
			}
			i += n
			steps++
			if steps > len(b) {
				t.Fatalf("Scan loop over %q did not terminate", s)
			}
		}
	}
}
