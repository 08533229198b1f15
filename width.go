package runesafe

// Width returns the number of terminal columns needed to display the UTF-8
// bytes in b. [Narrow] and [Ambiguous] characters count one column, [Wide]
// and [Emoji] characters two, [Ignorable] and [Other] characters none.
// Malformed sequences never contribute columns: the offending byte is skipped
// and measurement resumes at the next byte, so Width is total over arbitrary
// input.
//
// Width is additive. Measuring a concatenation equals the sum of measuring
// its parts as long as the split does not fall inside a well-formed sequence.
func Width(b []byte) int {
	width := 0
	for len(b) > 0 {
		if c := b[0]; c <= asciiMax {
			if c >= 0x20 && c != 0x7f {
				width++
			}
			b = b[1:]
			continue
		}
		r, n, ok := Decode(b)
		if !ok {
			b = b[1:]
			continue
		}
		width += Classify(r).Columns()
		b = b[n:]
	}
	return width
}

// WidthString is like [Width] but its input is a string.
func WidthString(s string) int {
	width := 0
	for len(s) > 0 {
		if c := s[0]; c <= asciiMax {
			if c >= 0x20 && c != 0x7f {
				width++
			}
			s = s[1:]
			continue
		}
		r, n, ok := DecodeString(s)
		if !ok {
			s = s[1:]
			continue
		}
		width += Classify(r).Columns()
		s = s[n:]
	}
	return width
}
