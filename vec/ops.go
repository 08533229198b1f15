package vec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/scalecode-solutions/runesafe"
)

// Valid reports element-wise UTF-8 validity. Latin-1 elements are converted
// to UTF-8 before the check; bytes elements are checked raw. Absent elements
// produce absent results, and names carry over.
func Valid(xs *Strings) (*Logicals, error) {
	if xs == nil {
		return nil, ErrNilStrings
	}
	out := &Logicals{
		Values: make([]bool, len(xs.Elems)),
		NA:     make([]bool, len(xs.Elems)),
		Names:  cloneNames(xs.Names),
	}
	for i, el := range xs.Elems {
		if el.NA {
			out.NA[i] = true
			continue
		}
		data, _, err := toUTF8(el)
		if err != nil {
			return nil, fmt.Errorf("vec: entry %d: %w", i+1, err)
		}
		out.Values[i] = runesafe.Valid(data)
	}
	return out, nil
}

// Width reports element-wise display width in columns. Latin-1 elements are
// measured after conversion to UTF-8; malformed bytes contribute no columns.
// Absent elements produce absent results, and names carry over.
func Width(xs *Strings) (*Ints, error) {
	if xs == nil {
		return nil, ErrNilStrings
	}
	out := &Ints{
		Values: make([]int, len(xs.Elems)),
		NA:     make([]bool, len(xs.Elems)),
		Names:  cloneNames(xs.Names),
	}
	for i, el := range xs.Elems {
		if el.NA {
			out.NA[i] = true
			continue
		}
		data, _, err := toUTF8(el)
		if err != nil {
			return nil, fmt.Errorf("vec: entry %d: %w", i+1, err)
		}
		out.Values[i] = runesafe.Width(data)
	}
	return out, nil
}

// AsUTF8 coerces every element to validated UTF-8: Latin-1 data is
// converted, bytes and native elements are re-tagged as UTF-8 when their
// content validates. Absent elements pass through. The first element that
// cannot be represented as valid UTF-8 aborts the coercion with a
// [*CoerceError] naming its position. Element data in the result may alias
// the input.
func AsUTF8(xs *Strings) (*Strings, error) {
	if xs == nil {
		return nil, ErrNilStrings
	}
	out := &Strings{
		Elems: make([]String, len(xs.Elems)),
		Names: cloneNames(xs.Names),
	}
	for i, el := range xs.Elems {
		if el.NA {
			out.Elems[i] = String{NA: true}
			continue
		}
		data, _, err := toUTF8(el)
		if err != nil {
			return nil, fmt.Errorf("vec: entry %d: %w", i+1, err)
		}
		if verr := runesafe.Validate(data); verr != nil {
			ierr := verr.(*runesafe.InvalidUTF8Error)
			return nil, &CoerceError{
				Index:    i + 1,
				Offset:   ierr.Offset + 1,
				Byte:     ierr.Byte,
				Encoding: el.Encoding,
			}
		}
		out.Elems[i] = String{Data: data, Encoding: UTF8}
	}
	return out, nil
}

// EncodeOptions selects the escaped output form of [Encode]. Display elides
// default ignorables and pads emoji for terminal alignment. UTF8 false
// restricts the output to ASCII, rewriting every multi-byte character as a
// \uXXXX or \UXXXXXXXX escape.
type EncodeOptions struct {
	Display bool
	UTF8    bool
}

// Encode escapes every element for display. Bytes-tagged elements use the
// raw byte form; all others are converted to UTF-8 first and escaped in
// character form. Elements needing no rewrite keep their data and tag;
// rewritten elements are tagged UTF-8. Absent elements produce absent
// results, and names carry over.
func Encode(xs *Strings, opts EncodeOptions) (*Strings, error) {
	if xs == nil {
		return nil, ErrNilStrings
	}
	flags := runesafe.EscapeFlags{Display: opts.Display, ASCII: !opts.UTF8}
	out := &Strings{
		Elems: make([]String, len(xs.Elems)),
		Names: cloneNames(xs.Names),
	}
	var esc runesafe.Escaper
	changed := 0
	for i, el := range xs.Elems {
		if el.NA {
			out.Elems[i] = String{NA: true}
			continue
		}
		res, ch, err := encodeElem(&esc, el, flags)
		if err != nil {
			return nil, fmt.Errorf("vec: entry %d: %w", i+1, err)
		}
		if ch {
			changed++
		}
		out.Elems[i] = res
	}
	Logger().Debug("encoded string vector",
		zap.Int("elements", len(xs.Elems)),
		zap.Int("changed", changed))
	return out, nil
}

// encodeElem escapes one element. Unchanged elements come back as they were,
// tag included; rewritten output is copied out of the Escaper's buffer and
// tagged UTF-8.
func encodeElem(esc *runesafe.Escaper, el String, flags runesafe.EscapeFlags) (String, bool, error) {
	data, converted, err := toUTF8(el)
	if err != nil {
		return String{}, false, err
	}
	var escaped []byte
	if el.Encoding == Bytes {
		escaped, err = esc.EscapeBytes(data)
	} else {
		escaped, err = esc.Escape(data, flags)
	}
	if err != nil {
		return String{}, false, err
	}
	if sameSlice(escaped, data) {
		if converted {
			return String{Data: data, Encoding: UTF8}, true, nil
		}
		return el, false, nil
	}
	return String{Data: append([]byte(nil), escaped...), Encoding: UTF8}, true, nil
}

func sameSlice(a, b []byte) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
