package ticker

import "unicode/utf8"

// runeLen returns the number of code points in s.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// runeSkip returns the byte offset of the ith code point in s (or len(s) if
// i is beyond the string), so slicing never splits a multi-byte rune.
func runeSkip(s string, i int) int {
	if i <= 0 {
		return 0
	}
	pos := 0
	for n := 0; n < i && pos < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}

// runeSlice returns the substring of s consisting of count code points
// starting at the offsetth code point.
func runeSlice(s string, offset, count int) string {
	if count <= 0 {
		return ""
	}
	start := runeSkip(s, offset)
	end := runeSkip(s[start:], count) + start
	return s[start:end]
}
