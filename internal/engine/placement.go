package engine

import "strings"

// specialVowelPairs are the vowel clusters whose second character takes the
// tone mark even though the generic "no final, two letters -> first
// character" rule below would otherwise put it on the first.
var specialVowelPairs = []string{"oa", "oe", "oo", "uy", "uo", "ie"}

// toneMarkPosition returns the character index within initial+vowel+final
// that the tone mark belongs on. vowel is the vowel cluster as it stands
// after letter modifications have already been applied (so a circumflex or
// horn already in place can be detected), used to locate the tone in the
// same pass a renderer uses. The rules, in order:
//
//  1. A single-letter vowel cluster takes the tone on its only character.
//  2. A vowel cluster already containing ơ, ê or â (in that priority order)
//     places the tone there.
//  3. One of the special pairs ("oa", "oe", "oo", "uy", "uo", "ie") places
//     the tone on its second character - New accent style does; Old accent
//     style puts it on the first instead, which is the one place the two
//     styles disagree.
//  4. With no final consonant and a two-letter vowel cluster, the tone goes
//     on the first character (as in "chào", not "chaò").
//  5. Otherwise the tone goes on the second vowel character.
func toneMarkPosition(initialLen int, vowel string, finalEmpty bool, style AccentStyle) int {
	vowelRunes := []rune(vowel)
	vowelLen := len(vowelRunes)
	vowelIndex := initialLen

	if vowelLen == 0 {
		return -1
	}
	if vowelLen == 1 {
		return vowelIndex
	}

	for i, r := range vowelRunes {
		if lowerVN(r) == 'ơ' {
			return vowelIndex + i
		}
	}
	for i, r := range vowelRunes {
		if lowerVN(r) == 'ê' {
			return vowelIndex + i
		}
	}
	for i, r := range vowelRunes {
		if lowerVN(r) == 'â' {
			return vowelIndex + i
		}
	}

	lower := strings.ToLower(vowel)
	for _, pair := range specialVowelPairs {
		if strings.Contains(lower, pair) {
			if style == AccentOld {
				return vowelIndex
			}
			return vowelIndex + 1
		}
	}

	if finalEmpty && vowelLen == 2 {
		return vowelIndex
	}

	return vowelIndex + 1
}

// modificationPositions returns every index within initial+vowel+final
// (character indices) eligible to carry mod, used by ModifyLetter to decide
// where to write a new modification and by recalculateModifications to
// reapply one after the syllable's shape changed.
//
//  1. ModDyet always targets the first letter (callers only invoke this when
//     that letter is actually "d").
//  2. ModCircumflex targets whichever of a/o/e appears in the vowel cluster -
//     but only if exactly one of the three appears. A cluster like "ao" that
//     contains both is structurally ambiguous and yields no position at all,
//     so the keystroke that triggered it falls back to a literal letter.
//  3. ModBreve targets "a".
//  4. ModHorn never applies to "oa"; a bare "uo" with an initial consonant
//     and no final consonant takes it on the "o" only;
//     "uo", "uoi" and "uou" take the modification on both "u" and "o";
//     otherwise it lands on "u" if present, else "o".
func modificationPositions(initial, vowel, final string, mod Modification) []int {
	if mod == ModDyet {
		return []int{0}
	}

	vowelIndex := len([]rune(initial))
	lower := strings.ToLower(vowel)

	switch mod {
	case ModCircumflex:
		var indexes []int
		for _, target := range []rune{'a', 'o', 'e'} {
			if idx := runeIndex(lower, target); idx != -1 {
				indexes = append(indexes, idx)
			}
		}
		if len(indexes) != 1 {
			return nil
		}
		return []int{vowelIndex + indexes[0]}

	case ModBreve:
		idx := runeIndex(lower, 'a')
		if idx == -1 {
			return nil
		}
		return []int{vowelIndex + idx}

	case ModHorn:
		if lower == "oa" {
			return nil
		}
		if lower == "uo" && initial != "" && final == "" {
			return []int{vowelIndex + 1}
		}
		if lower == "uo" || lower == "uoi" || lower == "uou" {
			return []int{vowelIndex, vowelIndex + 1}
		}
		if idx := runeIndex(lower, 'u'); idx != -1 {
			return []int{vowelIndex + idx}
		}
		if idx := runeIndex(lower, 'o'); idx != -1 {
			return []int{vowelIndex + idx}
		}
		return nil
	}
	return nil
}

// runeIndex returns the character index of the first occurrence of target
// in s, or -1 if absent.
func runeIndex(s string, target rune) int {
	for i, r := range []rune(s) {
		if r == target {
			return i
		}
	}
	return -1
}
