// Package vec applies the runesafe core to vectors of encoding-tagged byte
// strings, the shape text data arrives in from data frames and host language
// bindings. Elements may be absent (NA); vectors may carry name metadata.
// Absence and names are preserved by every operation: an absent element
// produces an absent result, and names are copied to the result vector.
//
// Elements tagged [Latin1] are converted to UTF-8 before validation,
// measurement, or escaping. Elements tagged [Native] are treated as UTF-8,
// the native encoding of a Go host. Elements tagged [Bytes] are never
// decoded.
package vec

import (
	"slices"
	"strconv"
)

// Encoding declares how a [String] element's bytes are to be interpreted.
type Encoding int

const (
	UTF8   Encoding = iota // well-formed UTF-8, or claimed to be
	Latin1                 // ISO 8859-1
	Bytes                  // raw bytes, exempt from decoding
	Native                 // host native encoding, UTF-8 for Go
)

var encodingNames = [...]string{
	UTF8:   "UTF-8",
	Latin1: "latin1",
	Bytes:  "bytes",
	Native: "native",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return "Encoding(" + strconv.Itoa(int(e)) + ")"
	}
	return encodingNames[e]
}

// String is one vector element: a byte buffer tagged with its declared
// encoding. An absent element has NA set and carries no data.
type String struct {
	Data     []byte
	Encoding Encoding
	NA       bool
}

// Strings is a vector of [String] elements. Names, when non-nil, runs
// parallel to Elems. A Strings is not safe for concurrent mutation.
type Strings struct {
	Elems []String
	Names []string
}

// New builds an unnamed Strings vector of UTF-8 tagged elements.
func New(ss ...string) *Strings {
	elems := make([]String, len(ss))
	for i, s := range ss {
		elems[i] = String{Data: []byte(s), Encoding: UTF8}
	}
	return &Strings{Elems: elems}
}

// Len returns the number of elements. A nil vector has length zero.
func (xs *Strings) Len() int {
	if xs == nil {
		return 0
	}
	return len(xs.Elems)
}

// Logicals is a vector of booleans with an absence mask. Values and NA run
// parallel to the elements of the vector that produced them.
type Logicals struct {
	Values []bool
	NA     []bool
	Names  []string
}

// Ints is a vector of integers with an absence mask.
type Ints struct {
	Values []int
	NA     []bool
	Names  []string
}

func cloneNames(names []string) []string {
	return slices.Clone(names)
}
