package runesafe

import (
	"errors"
	"fmt"
)

// ErrEscapedLen is returned when an escaped result would not fit in the
// maximum representable buffer size of 2^31-1 bytes.
var ErrEscapedLen = errors.New("escaped string length exceeds maximum (2^31-1 bytes)")

// InvalidUTF8Error locates the first ill-formed byte in a buffer that was
// expected to hold UTF-8 text. The offset always points at the byte where the
// defect was detected: at a stray continuation byte itself, or at the leading
// byte of a truncated, overlong, surrogate, or out-of-range sequence.
type InvalidUTF8Error struct {
	Offset int  // byte offset of the offending byte, 0-based
	Byte   byte // value of the offending byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}
