package engine

import "strings"

// validInitials are the Vietnamese initial consonant clusters (phụ âm đầu):
// 17 single letters, 10 digraphs, and the one trigraph "ngh".
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// validFinals are the Vietnamese final consonant clusters (phụ âm cuối):
// 5 single stops/nasals and 3 digraphs. Semivowel offglides (i, y, o, u)
// are never seen here in practice: the parser's greedy vowel scan always
// absorbs them into the vowel cluster before the final cluster begins.
var validFinals = map[string]bool{
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
}

// spellingRules maps an (initial-without-tone, leading-vowel-letter)
// combination that Vietnamese orthography forbids to the combination it
// should have been instead. IsValidSyllable rejects any syllable whose
// combination is a key here; the mapped spelling itself is not read.
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe",
	"nge": "nghe", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// IsValidInitial reports whether s (diacritic-free, any case) is one of the
// legal Vietnamese initial consonant clusters, including the empty string
// (a syllable may start with a vowel).
func IsValidInitial(s string) bool {
	if s == "" {
		return true
	}
	lower := strings.ToLower(strings.ReplaceAll(s, "Đ", "đ"))
	return validInitials[lower]
}

// IsValidFinal reports whether s (diacritic-free, any case) is one of the
// legal Vietnamese final consonant clusters, including the empty string.
func IsValidFinal(s string) bool {
	if s == "" {
		return true
	}
	return validFinals[strings.ToLower(s)]
}

// IsValidSyllable reports whether s could be a well-formed (or
// still-in-progress) Vietnamese syllable: its initial and final clusters -
// whichever are present - must each be legal, and an initial must not
// combine with a following vowel letter in a way Vietnamese spelling
// conventions forbid (e.g. "c" before "e/i/y", which should be spelled
// with "k" instead). A vowel cluster is not required: the driver calls
// this mid-word, before a vowel has necessarily been typed yet (e.g. "đ"
// alone, composed from "d"+"d", is a legal partial state).
func IsValidSyllable(s *Syllable) bool {
	if !IsValidInitial(s.Initial) {
		return false
	}
	if !IsValidFinal(s.Final) {
		return false
	}
	if s.Initial != "" && s.Vowel != "" {
		combined := strings.ToLower(s.Initial) + strings.ToLower(string([]rune(s.Vowel)[0]))
		if _, forbidden := spellingRules[combined]; forbidden {
			return false
		}
	}
	return true
}
