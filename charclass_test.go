package runesafe

import "testing"

// TestClassify tests category assignment across the scripts and property
// groups the table is built from.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Category
	}{
		{"ascii letter", 'a', Narrow},
		{"ascii space", ' ', Narrow},
		{"ascii tilde", '~', Narrow},
		{"ascii control", '\n', Other},
		{"nul", 0, Other},
		{"del", 0x7f, Other},
		{"c1 control", 0x0085, Other},
		{"no-break space", 0x00a0, Narrow},
		{"section sign", 0x00a7, Ambiguous},
		{"copyright sign", 0x00a9, Narrow},
		{"soft hyphen", 0x00ad, Ignorable},
		{"e acute", 0x00e9, Ambiguous},
		{"n tilde", 0x00f1, Narrow},
		{"combining acute", 0x0301, Ignorable},
		{"greek epsilon", 0x03b5, Ambiguous},
		{"cyrillic zhe", 0x0416, Ambiguous},
		{"hebrew alef", 0x05d0, Narrow},
		{"arabic-indic zero", 0x0660, Narrow},
		{"arabic number sign", 0x0600, Other},
		{"thai sara i", 0x0e34, Ignorable},
		{"hangul choseong", 0x1100, Wide},
		{"hangul jungseong filler", 0x1160, Ignorable},
		{"zero width space", 0x200b, Ignorable},
		{"zero width joiner", 0x200d, Ignorable},
		{"line separator", 0x2028, Other},
		{"paragraph separator", 0x2029, Other},
		{"euro sign", 0x20ac, Ambiguous},
		{"circled one", 0x2460, Ambiguous},
		{"snowman", 0x2603, Narrow},
		{"hot beverage", 0x2615, Emoji},
		{"high voltage", 0x26a1, Emoji},
		{"ideographic space", 0x3000, Wide},
		{"kana voicing mark", 0x3099, Ignorable},
		{"cjk one", 0x4e00, Wide},
		{"hangul syllable", 0xac00, Wide},
		{"surrogate bound", 0xd800, Other},
		{"private use", 0xe000, Other},
		{"variation selector 16", 0xfe0f, Ignorable},
		{"fullwidth a", 0xff21, Wide},
		{"halfwidth katakana a", 0xff71, Narrow},
		{"replacement character", 0xfffd, Ambiguous},
		{"regional indicator", 0x1f1e6, Emoji},
		{"thermometer", 0x1f321, Narrow},
		{"grinning cat", 0x1f638, Emoji},
		{"cjk extension b", 0x20000, Wide},
		{"tag character", 0xe0020, Ignorable},
		{"variation selector supplement", 0xe0100, Ignorable},
		{"plane 15 private use", 0xf0000, Other},
		{"max code point", 0x10ffff, Other},
		{"negative", -1, Other},
		{"beyond unicode", 0x110000, Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%#x) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

// TestCategoryColumns tests the column count of each category.
func TestCategoryColumns(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{Other, 0},
		{Ignorable, 0},
		{Narrow, 1},
		{Ambiguous, 1},
		{Wide, 2},
		{Emoji, 2},
		{Category(17), 0},
	}
	for _, tt := range tests {
		if got := tt.cat.Columns(); got != tt.want {
			t.Errorf("%v.Columns() = %d, want %d", tt.cat, got, tt.want)
		}
	}
}

// TestCategoryString tests the category names.
func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{Other, "Other"},
		{Ignorable, "Ignorable"},
		{Narrow, "Narrow"},
		{Ambiguous, "Ambiguous"},
		{Wide, "Wide"},
		{Emoji, "Emoji"},
		{Category(17), "Category(17)"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

// TestCategoryTableOrder tests the generated table invariants the binary
// search depends on: ranges sorted, non-overlapping, and within the code
// space.
func TestCategoryTableOrder(t *testing.T) {
	prev := -1
	for i, entry := range categoryCodePoints {
		lo, hi, cat := entry[0], entry[1], entry[2]
		if lo > hi {
			t.Errorf("entry %d: lo %#x > hi %#x", i, lo, hi)
		}
		if lo <= prev {
			t.Errorf("entry %d: lo %#x not after previous hi %#x", i, lo, prev)
		}
		if hi > 0x10ffff {
			t.Errorf("entry %d: hi %#x beyond the code space", i, hi)
		}
		if cat < int(Other) || cat > int(Emoji) {
			t.Errorf("entry %d: category %d out of range", i, cat)
		}
		prev = hi
	}
}
