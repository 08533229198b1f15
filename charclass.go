package runesafe

import "strconv"

// Category is the display classification of a single code point. It drives
// both the column sums of [Width] and the rewrite rules of [Escape].
type Category int

// The display categories. Narrow and Ambiguous occupy one terminal column,
// Wide and Emoji occupy two, Ignorable and Other occupy none.
const (
	Other     Category = iota // unassigned, control, or otherwise unprintable
	Ignorable                 // default-ignorable and combining code points
	Narrow                    // regular single-column characters
	Ambiguous                 // East Asian ambiguous width, narrow here
	Wide                      // East Asian wide and fullwidth characters
	Emoji                     // emoji presentation by default
)

var categoryNames = [...]string{
	Other:     "Other",
	Ignorable: "Ignorable",
	Narrow:    "Narrow",
	Ambiguous: "Ambiguous",
	Wide:      "Wide",
	Emoji:     "Emoji",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// Columns returns the number of monospace columns a code point of this
// category occupies on a terminal.
func (c Category) Columns() int {
	switch c {
	case Narrow, Ambiguous:
		return 1
	case Wide, Emoji:
		return 2
	default:
		return 0
	}
}

// categorySearch performs a binary search on the sorted category table.
// Each entry is [startCodePoint, endCodePoint, category]. Returns the
// matching entry, or a zero-initialized entry if not found.
func categorySearch(dictionary [][3]int, r rune) (result [3]int) {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// Classify returns the display [Category] of the given code point while fast
// tracking ASCII characters. The mapping is total: every code point yields
// exactly one category. Code points absent from the category table, outside
// the Unicode range, or in the surrogate range yield Other.
func Classify(r rune) Category {
	if r >= 0x20 && r <= 0x7e {
		return Narrow
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return Other
	}
	if r < 0 || r > maxRune {
		return Other
	}
	return Category(categorySearch(categoryCodePoints, r)[2])
}
