package transcript

import (
	"strings"
	"unicode"
)

// isCJK reports whether r is a CJK ideograph or kana/hangul syllable.
// Fullwidth punctuation is deliberately excluded: spacing applies between
// words, not around punctuation.
func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.Is(unicode.Bopomofo, r)
}

// isHalfwidthWord reports whether r is a halfwidth letter or digit.
func isHalfwidthWord(r rune) bool {
	return r < 0x2E80 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Spacing inserts a single space at every CJK/Latin word boundary, in both
// directions. The transform is idempotent: the inserted space breaks the
// adjacency that triggered it, so normalizing already-normalized text is a
// no-op.
func Spacing(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for i, r := range s {
		if i > 0 && (isCJK(prev) && isHalfwidthWord(r) || isHalfwidthWord(prev) && isCJK(r)) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// NormalizeText trims surrounding whitespace and applies CJK/Latin boundary
// spacing. This is the optional text-normalization pass the importer applies
// to every item carrying text.
func NormalizeText(s string) string {
	return Spacing(strings.TrimSpace(s))
}
