package runesafe

// maxRune is the largest valid Unicode code point.
const maxRune = '\U0010FFFF'

// asciiMax is the last single-byte code point. Bytes above it are leading or
// continuation bytes of multi-byte sequences.
const asciiMax = 0x7f

const (
	maskx = 0x3f // continuation byte payload mask
	mask2 = 0x1f // two-byte lead payload mask
	mask3 = 0x0f // three-byte lead payload mask
	mask4 = 0x07 // four-byte lead payload mask

	locb = 0x80 // lowest continuation byte
	hicb = 0xbf // highest continuation byte

	xx = 0xf1 // invalid leading byte
	as = 0xf0 // ASCII byte
	s1 = 0x02 // two-byte sequence, accept range 0
	s2 = 0x13 // three-byte sequence, accept range 1
	s3 = 0x03 // three-byte sequence, accept range 0
	s4 = 0x23 // three-byte sequence, accept range 2
	s5 = 0x34 // four-byte sequence, accept range 3
	s6 = 0x04 // four-byte sequence, accept range 0
	s7 = 0x44 // four-byte sequence, accept range 4
)

// first classifies a leading byte: the low three bits hold the total sequence
// length and the high four bits select the acceptRanges entry constraining
// the second byte.
var first = [256]uint8{
	//   1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange bounds the second byte of a multi-byte sequence. The bounds
// exclude overlong forms, surrogates, and code points beyond U+10FFFF, so a
// sequence passing them decodes to a scalar value. Continuation bytes after
// the second always accept [locb, hicb].
type acceptRange struct {
	lo, hi uint8
}

var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xa0, hicb}, // 0xE0: rejects overlong three-byte forms
	2: {locb, 0x9f}, // 0xED: rejects surrogates U+D800-U+DFFF
	3: {0x90, hicb}, // 0xF0: rejects overlong four-byte forms
	4: {locb, 0x8f}, // 0xF4: rejects code points above U+10FFFF
}

// Scan checks whether b begins with a single well-formed UTF-8 sequence and
// returns its length in bytes (1 to 4). It returns (0, false) if b is empty,
// if the first byte cannot lead a sequence, or if the sequence it leads is
// truncated, overlong, a surrogate, or beyond U+10FFFF. Scanning never looks
// past the bytes of the sequence under inspection.
func Scan(b []byte) (n int, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	c := b[0]
	if c <= asciiMax {
		return 1, true
	}
	x := first[c]
	if x == xx {
		return 0, false
	}
	size := int(x & 7)
	if size > len(b) {
		return 0, false
	}
	accept := acceptRanges[x>>4]
	if c2 := b[1]; c2 < accept.lo || accept.hi < c2 {
		return 0, false
	}
	if size == 2 {
		return 2, true
	}
	if c3 := b[2]; c3 < locb || hicb < c3 {
		return 0, false
	}
	if size == 3 {
		return 3, true
	}
	if c4 := b[3]; c4 < locb || hicb < c4 {
		return 0, false
	}
	return 4, true
}

// ScanString is like [Scan] but its input is a string.
func ScanString(s string) (n int, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	c := s[0]
	if c <= asciiMax {
		return 1, true
	}
	x := first[c]
	if x == xx {
		return 0, false
	}
	size := int(x & 7)
	if size > len(s) {
		return 0, false
	}
	accept := acceptRanges[x>>4]
	if c2 := s[1]; c2 < accept.lo || accept.hi < c2 {
		return 0, false
	}
	if size == 2 {
		return 2, true
	}
	if c3 := s[2]; c3 < locb || hicb < c3 {
		return 0, false
	}
	if size == 3 {
		return 3, true
	}
	if c4 := s[3]; c4 < locb || hicb < c4 {
		return 0, false
	}
	return 4, true
}

// Decode unpacks the first UTF-8 sequence in b into its code point and
// encoded length. It applies the same checks as [Scan] and returns
// (0, 0, false) on empty or malformed input.
func Decode(b []byte) (r rune, n int, ok bool) {
	n, ok = Scan(b)
	if !ok {
		return 0, 0, false
	}
	switch n {
	case 1:
		return rune(b[0]), 1, true
	case 2:
		return rune(b[0]&mask2)<<6 | rune(b[1]&maskx), 2, true
	case 3:
		return rune(b[0]&mask3)<<12 | rune(b[1]&maskx)<<6 | rune(b[2]&maskx), 3, true
	default:
		return rune(b[0]&mask4)<<18 | rune(b[1]&maskx)<<12 | rune(b[2]&maskx)<<6 | rune(b[3]&maskx), 4, true
	}
}

// DecodeString is like [Decode] but its input is a string.
func DecodeString(s string) (r rune, n int, ok bool) {
	n, ok = ScanString(s)
	if !ok {
		return 0, 0, false
	}
	switch n {
	case 1:
		return rune(s[0]), 1, true
	case 2:
		return rune(s[0]&mask2)<<6 | rune(s[1]&maskx), 2, true
	case 3:
		return rune(s[0]&mask3)<<12 | rune(s[1]&maskx)<<6 | rune(s[2]&maskx), 3, true
	default:
		return rune(s[0]&mask4)<<18 | rune(s[1]&maskx)<<12 | rune(s[2]&maskx)<<6 | rune(s[3]&maskx), 4, true
	}
}

// Validate checks that b contains nothing but well-formed UTF-8. It returns
// nil for valid input, or an [InvalidUTF8Error] locating the first offending
// byte. Validation stops at the first defect and never consumes past it.
func Validate(b []byte) error {
	for i := 0; i < len(b); {
		if b[i] <= asciiMax {
			i++
			continue
		}
		n, ok := Scan(b[i:])
		if !ok {
			return &InvalidUTF8Error{Offset: i, Byte: b[i]}
		}
		i += n
	}
	return nil
}

// ValidateString is like [Validate] but its input is a string.
func ValidateString(s string) error {
	for i := 0; i < len(s); {
		if s[i] <= asciiMax {
			i++
			continue
		}
		n, ok := ScanString(s[i:])
		if !ok {
			return &InvalidUTF8Error{Offset: i, Byte: s[i]}
		}
		i += n
	}
	return nil
}

// Valid reports whether b contains nothing but well-formed UTF-8.
func Valid(b []byte) bool {
	return Validate(b) == nil
}

// ValidString is like [Valid] but its input is a string.
func ValidString(s string) bool {
	return ValidateString(s) == nil
}
