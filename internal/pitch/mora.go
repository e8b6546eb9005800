// Package pitch compiles Japanese pitch-accent data into inline-styled
// HTML diagrams. It segments kana readings into morae, classifies raw
// dictionary accent codes into the four canonical patterns, computes the
// box borders that draw the pitch contour, and renders the result as
// markup suitable for a flashcard field.
//
// Everything here is pure: the dictionary is built once and never
// mutated, so all operations are safe for concurrent callers.
package pitch

// combining holds the small kana that never start a mora: the gemination
// mark っ/ッ, the palatalization kana ゃゅょ and the small vowels, plus
// katakana small-wa. They attach to the preceding base kana.
var combining = map[rune]bool{
	'ぁ': true, 'ぃ': true, 'ぅ': true, 'ぇ': true, 'ぉ': true,
	'っ': true, 'ゃ': true, 'ゅ': true, 'ょ': true,
	'ァ': true, 'ィ': true, 'ゥ': true, 'ェ': true, 'ォ': true,
	'ッ': true, 'ャ': true, 'ュ': true, 'ョ': true, 'ヮ': true,
}

// Segment splits a kana reading into morae. A base kana plus any
// directly following small kana form one mora, so "れっしゃ" becomes
// ["れっ", "しゃ"]. An empty reading yields no morae. The result depends
// only on the input; calling Segment twice returns equal slices.
func Segment(reading string) []string {
	runes := []rune(reading)

	var morae []string
	var cur []rune
	for i, r := range runes {
		cur = append(cur, r)
		// Hold the buffer open while the next rune attaches to it.
		if i+1 < len(runes) && combining[runes[i+1]] {
			continue
		}
		morae = append(morae, string(cur))
		cur = cur[:0]
	}
	return morae
}

// MoraCount returns the number of morae in reading.
func MoraCount(reading string) int {
	return len(Segment(reading))
}
