package pitch

import "strings"

// ToKatakana converts every hiragana rune in s to its katakana
// equivalent, leaving katakana, ー and other runes untouched. Used when
// comparing dictionary readings against morphological-analyzer output,
// which is always katakana.
func ToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'ぁ' && r <= 'ゖ' {
			r += 'ァ' - 'ぁ'
		}
		b.WriteRune(r)
	}
	return b.String()
}
