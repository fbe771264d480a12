package engine

import "strings"

// ParseSyllable splits a raw string (which may already carry diacritics)
// into its initial consonant cluster, vowel cluster, and final consonant
// cluster. The split is infallible: any UTF-8 string parses, and an empty
// result is legal.
//
// The boundary between the initial cluster and the vowel is the first vowel
// character, except that a "q" immediately followed by "u", or a "g"
// immediately followed by "i" when a further vowel follows, keeps that
// "u"/"i" in the initial cluster (qu, gi act as consonant digraphs). The
// vowel region ends at the first non-vowel that follows it; everything past
// that is the final cluster.
func ParseSyllable(raw string) (initial, vowel, final string) {
	runes := []rune(raw)
	n := len(runes)

	// Classification is done on the clean, lowercased form of each rune so
	// that an already-accented raw string (e.g. "việt") parses the same as
	// its ASCII-typed origin ("vieejt" mid-composition) would.
	clean := make([]rune, n)
	for idx, r := range runes {
		clean[idx] = lowerVN(CleanChar(r))
	}
	isVowelAt := func(idx int) bool { return IsVowel(clean[idx]) }

	i := 0
	// Initial consonant cluster.
	for i < n && !isVowelAt(i) {
		i++
	}

	// qu / gi exception: pull one more letter into the initial cluster.
	if i > 0 && i < n {
		prev := clean[i-1]
		cur := clean[i]
		if prev == 'q' && cur == 'u' && i+1 < n && isVowelAt(i+1) {
			i++
		} else if prev == 'g' && cur == 'i' && i+1 < n && isVowelAt(i+1) {
			i++
		}
	}

	initial = string(runes[:i])
	vowelStart := i

	for i < n && isVowelAt(i) {
		i++
	}
	vowel = string(runes[vowelStart:i])
	final = string(runes[i:])
	return initial, vowel, final
}

// splitClean is a convenience used by Syllable.Push/Set: it parses raw and
// returns clean (diacritic-free) components, leaving tone/modification
// extraction to the caller.
func splitClean(raw string) (initial, vowel, final string) {
	i, v, f := ParseSyllable(raw)
	return cleanString(i), cleanString(v), cleanString(f)
}

func cleanString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(CleanChar(r))
	}
	return b.String()
}
