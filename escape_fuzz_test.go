package runesafe

import (
	"bytes"
	"testing"
)

// FuzzEscape cross-checks the sizing and emitting passes over arbitrary input
// and every flag combination, and pins the output guarantees: character-mode
// output is always well-formed UTF-8, forced-ASCII and byte-mode output never
// leave printable ASCII, and non-display escaping is idempotent.
func FuzzEscape(f *testing.F) {
	seeds := [][]byte{
		[]byte(""),
		[]byte("hello\n"),
		[]byte("café"),
		[]byte("中文"),
		[]byte("\U0001f638"),
		[]byte("a​́b"),
		[]byte("\x00\x1f\x7f\x80\xff"),
		[]byte("\xe4\xb8"),
		[]byte("\xed\xa0\x80"),
	}
	for _, seed := range seeds {
		f.Add(seed, false, false)
		f.Add(seed, true, false)
		f.Add(seed, false, true)
		f.Add(seed, true, true)
	}

	f.Fuzz(func(t *testing.T, data []byte, display, ascii bool) {
		flags := EscapeFlags{Display: display, ASCII: ascii}

		size, err := EscapedSize(data, flags)
		if err != nil {
			t.Fatal(err)
		}
		out, err := Escape(data, flags)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != size {
			t.Fatalf("sized %d but emitted %d bytes for %q %+v", size, len(out), data, flags)
		}
		if !Valid(out) {
			t.Fatalf("escaped output %q is not valid UTF-8", out)
		}
		if ascii {
			for i, c := range out {
				if c < 0x20 || c > 0x7e {
					t.Fatalf("forced-ASCII output holds byte %#02x at offset %d", c, i)
				}
			}
		}
		if !display {
			twice, err := Escape(out, flags)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(twice, out) {
				t.Fatalf("not idempotent for %q %+v: %q then %q", data, flags, out, twice)
			}
		}

		size, err = EscapedSizeBytes(data)
		if err != nil {
			t.Fatal(err)
		}
		out, err = EscapeBytes(data)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != size {
			t.Fatalf("byte mode sized %d but emitted %d bytes for %q", size, len(out), data)
		}
		for i, c := range out {
			if c < 0x20 || c > 0x7e {
				t.Fatalf("byte-mode output holds byte %#02x at offset %d", c, i)
			}
		}
	})
}
