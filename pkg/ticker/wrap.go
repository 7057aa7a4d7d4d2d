package ticker

import "strings"

// WrapLines hard-wraps text into lines of at most lineLen codepoints,
// breaking on word boundaries where possible. A single word longer than
// lineLen is broken mid-word rather than left overflowing.
func WrapLines(text string, lineLen int) []string {
	if lineLen <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, lineLen)...)
	}
	return lines
}

func wrapParagraph(paragraph string, lineLen int) []string {
	if paragraph == "" {
		return []string{""}
	}

	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	curLen := 0
	for _, word := range words {
		wLen := runeLen(word)

		for wLen > lineLen {
			space := lineLen - curLen
			if curLen > 0 {
				space--
			}
			if space <= 0 {
				lines = append(lines, cur)
				cur, curLen = "", 0
				space = lineLen
			}
			if curLen > 0 {
				cur += " "
				curLen++
			}
			cur += runeSlice(word, 0, space)
			curLen += space
			word = runeSlice(word, space, wLen-space)
			wLen = runeLen(word)
			lines = append(lines, cur)
			cur, curLen = "", 0
		}

		extra := wLen
		if curLen > 0 {
			extra++
		}
		if curLen+extra > lineLen {
			lines = append(lines, cur)
			cur, curLen = word, wLen
			continue
		}
		if curLen > 0 {
			cur += " "
			curLen++
		}
		cur += word
		curLen += wLen
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// sampleGlyphWidth approximates a proportional font's typical glyph
// advance using the width of the character 'a'. It is deliberately a
// fudge: word-wrap only needs a column estimate, not pixel-exact
// placement, and the wrapped lines are not re-measured afterwards.
func sampleGlyphWidth(font Font) int {
	if font == nil {
		return 1
	}
	w := font.GlyphWidth("a", 0)
	if w <= 0 {
		return 1
	}
	return w
}

// WrapLinesSmooth estimates a character column budget for fieldWidth
// pixels from the width of a sampled glyph, then defers to [WrapLines].
func WrapLinesSmooth(text string, fieldWidth int, font Font) []string {
	glyph := sampleGlyphWidth(font)
	lineLen := fieldWidth / glyph
	if lineLen <= 0 {
		lineLen = 1
	}
	return WrapLines(text, lineLen)
}
