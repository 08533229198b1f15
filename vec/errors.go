package vec

import (
	"errors"
	"fmt"

	"github.com/scalecode-solutions/runesafe"
)

// ErrNilStrings reports a nil vector passed to an operation that requires
// elements.
var ErrNilStrings = errors.New("vec: nil Strings vector")

// CoerceError is the fatal result of [AsUTF8] on an element that cannot be
// represented as valid UTF-8. Index is the 1-based element position in the
// vector. Offset is the 1-based byte position of the first invalid byte
// within the element, counted in the converted form when a conversion
// applied. Encoding is the element's declared encoding and selects the
// message wording.
type CoerceError struct {
	Index    int
	Offset   int
	Byte     byte
	Encoding Encoding
}

func (e *CoerceError) Error() string {
	switch e.Encoding {
	case Bytes:
		return fmt.Sprintf(`entry %d cannot be converted from "bytes" to "UTF-8"; it contains an invalid byte in position %d (0x%02x)`,
			e.Index, e.Offset, e.Byte)
	case UTF8, Native:
		return fmt.Sprintf(`entry %d is marked as "UTF-8" but contains an invalid byte in position %d (0x%02x)`,
			e.Index, e.Offset, e.Byte)
	default:
		return fmt.Sprintf(`entry %d cannot be converted from "%s" to "UTF-8"; the converted form contains an invalid byte in position %d (0x%02x)`,
			e.Index, e.Encoding, e.Offset, e.Byte)
	}
}

// Unwrap returns the underlying [runesafe.InvalidUTF8Error] with its 0-based
// offset, so errors.As reaches the malformed-sequence detail.
func (e *CoerceError) Unwrap() error {
	return &runesafe.InvalidUTF8Error{Offset: e.Offset - 1, Byte: e.Byte}
}
