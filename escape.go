package runesafe

// EscapeFlags selects the output form of the escape functions.
//
// Display optimizes for terminal rendering: default-ignorable characters are
// dropped and emoji are padded with a zero width space so that the output
// advances the cursor by the measured [Width]. ASCII forces pure-ASCII output
// by rewriting every multi-byte character as a \uXXXX or \UXXXXXXXX escape.
type EscapeFlags struct {
	Display bool
	ASCII   bool
}

// Escaped strings longer than this cannot be represented; the sizing pass
// fails with [ErrEscapedLen] before any output is allocated.
const maxEscapedLen = 1<<31 - 1

const hexDigits = "0123456789abcdef"

const zwsp = "​"

// controlEscape maps the C0 bytes with single-letter escape forms to their
// letter. Zero entries use the \xHH form instead.
var controlEscape = [14]byte{
	'\a': 'a',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
}

func appendByteEscape(out []byte, c byte) []byte {
	return append(out, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
}

func appendRuneEscape(out []byte, r rune) []byte {
	if r <= 0xffff {
		return append(out, '\\', 'u',
			hexDigits[r>>12&0xf], hexDigits[r>>8&0xf],
			hexDigits[r>>4&0xf], hexDigits[r&0xf])
	}
	return append(out, '\\', 'U',
		hexDigits[r>>28&0xf], hexDigits[r>>24&0xf],
		hexDigits[r>>20&0xf], hexDigits[r>>16&0xf],
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf],
		hexDigits[r>>4&0xf], hexDigits[r&0xf])
}

// escapeOne handles the single unit at the start of b, appending its escaped
// form to out. It returns the number of input bytes consumed, the extended
// buffer, and whether the unit passed through unchanged. Both the sizing pass
// and the emitting pass run this same body, so their results cannot drift
// apart.
//
// The rules, in order: a malformed byte becomes \xHH and consumes exactly one
// byte; the C0 bytes with shorthand forms become \a \b \t \n \v \f \r; other
// unprintable ASCII becomes \xHH; any multi-byte character becomes \uXXXX or
// \UXXXXXXXX when ASCII output is forced, as does a character of category
// [Other] otherwise; an [Ignorable] character is dropped in display mode; an
// [Emoji] character is copied and padded with a zero width space in display
// mode; everything else is copied unchanged.
func escapeOne(b []byte, flags EscapeFlags, out []byte) (int, []byte, bool) {
	c := b[0]
	if c <= asciiMax {
		if c >= 0x20 && c != 0x7f {
			return 1, append(out, c), true
		}
		if int(c) < len(controlEscape) && controlEscape[c] != 0 {
			return 1, append(out, '\\', controlEscape[c]), false
		}
		return 1, appendByteEscape(out, c), false
	}
	r, n, ok := Decode(b)
	if !ok {
		return 1, appendByteEscape(out, c), false
	}
	if flags.ASCII {
		return n, appendRuneEscape(out, r), false
	}
	switch Classify(r) {
	case Other:
		return n, appendRuneEscape(out, r), false
	case Ignorable:
		if flags.Display {
			return n, out, false
		}
	case Emoji:
		if flags.Display {
			out = append(out, b[:n]...)
			return n, append(out, zwsp...), false
		}
	}
	return n, append(out, b[:n]...), true
}

// escapeByteOne is the byte-mode counterpart of [escapeOne]: no decoding, one
// byte per unit, printable ASCII copied and everything else escaped. Flags do
// not apply in byte mode.
func escapeByteOne(c byte, out []byte) ([]byte, bool) {
	if c >= 0x20 && c <= 0x7e {
		return append(out, c), true
	}
	if int(c) < len(controlEscape) && controlEscape[c] != 0 {
		return append(out, '\\', controlEscape[c]), false
	}
	return appendByteEscape(out, c), false
}

func escapedSize(b []byte, flags EscapeFlags) (size int, clean bool, err error) {
	var tmp [16]byte
	clean = true
	for i := 0; i < len(b); {
		n, out, ok := escapeOne(b[i:], flags, tmp[:0])
		if len(out) > maxEscapedLen-size {
			return 0, false, ErrEscapedLen
		}
		size += len(out)
		clean = clean && ok
		i += n
	}
	return size, clean, nil
}

func escapedSizeBytes(b []byte) (size int, clean bool, err error) {
	var tmp [16]byte
	clean = true
	for _, c := range b {
		out, ok := escapeByteOne(c, tmp[:0])
		if len(out) > maxEscapedLen-size {
			return 0, false, ErrEscapedLen
		}
		size += len(out)
		clean = clean && ok
	}
	return size, clean, nil
}

// EscapedSize returns the length in bytes of [Escape]'s output for b without
// producing it. It fails only with [ErrEscapedLen].
func EscapedSize(b []byte, flags EscapeFlags) (int, error) {
	size, _, err := escapedSize(b, flags)
	return size, err
}

// EscapedSizeBytes returns the length in bytes of [EscapeBytes]'s output for
// b without producing it. It fails only with [ErrEscapedLen].
func EscapedSizeBytes(b []byte) (int, error) {
	size, _, err := escapedSizeBytes(b)
	return size, err
}

// An Escaper escapes repeatedly into one growable buffer. The slice returned
// by its methods is valid only until the next call on the same Escaper, which
// may overwrite it. The zero value is ready to use. An Escaper is not safe
// for concurrent use.
type Escaper struct {
	buf []byte
}

// Escape returns the escaped form of the UTF-8 bytes in b under flags. If no
// unit needs rewriting, b itself is returned and the buffer is untouched;
// otherwise the result lives in the Escaper's buffer. It fails only with
// [ErrEscapedLen].
func (e *Escaper) Escape(b []byte, flags EscapeFlags) ([]byte, error) {
	size, clean, err := escapedSize(b, flags)
	if err != nil {
		return nil, err
	}
	if clean {
		return b, nil
	}
	if cap(e.buf) < size {
		e.buf = make([]byte, 0, size)
	}
	out := e.buf[:0]
	for i := 0; i < len(b); {
		var n int
		n, out, _ = escapeOne(b[i:], flags, out)
		i += n
	}
	if len(out) != size {
		panic("runesafe: escape output does not match its sized length")
	}
	e.buf = out
	return out, nil
}

// EscapeBytes is like [Escape] but treats b as raw bytes rather than UTF-8:
// nothing is decoded, printable ASCII is copied, and every other byte becomes
// a shorthand or \xHH escape.
func (e *Escaper) EscapeBytes(b []byte) ([]byte, error) {
	size, clean, err := escapedSizeBytes(b)
	if err != nil {
		return nil, err
	}
	if clean {
		return b, nil
	}
	if cap(e.buf) < size {
		e.buf = make([]byte, 0, size)
	}
	out := e.buf[:0]
	for _, c := range b {
		out, _ = escapeByteOne(c, out)
	}
	if len(out) != size {
		panic("runesafe: escape output does not match its sized length")
	}
	e.buf = out
	return out, nil
}

// Escape returns the escaped form of the UTF-8 bytes in b under flags in a
// newly allocated buffer, or b itself if no unit needs rewriting. It fails
// only with [ErrEscapedLen].
func Escape(b []byte, flags EscapeFlags) ([]byte, error) {
	var e Escaper
	return e.Escape(b, flags)
}

// EscapeBytes is like [Escape] but treats b as raw bytes. See
// [Escaper.EscapeBytes].
func EscapeBytes(b []byte) ([]byte, error) {
	var e Escaper
	return e.EscapeBytes(b)
}
