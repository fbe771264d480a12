package engine

import "strings"

// modEntry is one (char_index, Modification) pair in a Syllable's
// letter_modifications list, kept in an ordered slice since a syllable
// rarely carries more than two or three modifications.
type modEntry struct {
	index int
	mod   Modification
}

// Syllable is a parsed representation of a (partial) Vietnamese word. The
// initial, vowel and final fields are always diacritic-free; the tone mark
// and letter modifications are tracked separately and only applied when the
// syllable is rendered, so a transformation can recompute their placement
// without re-deriving the whole parse.
type Syllable struct {
	Initial string
	Vowel   string
	Final   string

	ToneMark ToneMark
	HasTone  bool

	AccentStyle AccentStyle

	modifications []modEntry
}

// NewSyllable returns an empty syllable with the New accent style.
func NewSyllable() *Syllable {
	return &Syllable{}
}

// Len returns the syllable's length in characters (initial+vowel+final).
func (s *Syllable) Len() int {
	return len([]rune(s.Initial)) + len([]rune(s.Vowel)) + len([]rune(s.Final))
}

// IsEmpty reports whether the syllable has no initial, vowel, or final.
func (s *Syllable) IsEmpty() bool {
	return s.Initial == "" && s.Vowel == "" && s.Final == ""
}

// ContainsModification reports whether the syllable currently carries mod.
func (s *Syllable) ContainsModification(mod Modification) bool {
	for _, e := range s.modifications {
		if e.mod == mod {
			return true
		}
	}
	return false
}

// Push appends ch to the syllable, re-parses the resulting shape, and
// recalculates modification placement.
func (s *Syllable) Push(ch rune) {
	concat := s.Initial + s.Vowel + s.Final + string(ch)
	s.Initial, s.Vowel, s.Final = splitClean(concat)
	s.recalculateModifications()
}

// Set parses raw (which may already carry diacritics) into this syllable,
// extracting the tone mark and letter modifications and cleaning the
// initial/vowel/final text slots.
func (s *Syllable) Set(raw string) {
	s.Initial, s.Vowel, s.Final = splitClean(raw)
	s.modifications = extractModifications(raw)
	if tone, ok := extractTone(raw); ok {
		s.ToneMark = tone
		s.HasTone = true
	} else {
		s.ToneMark = ToneNone
		s.HasTone = false
	}
}

// ReplaceLastChar overwrites the syllable's last character with ch and
// re-parses the result via Set.
func (s *Syllable) ReplaceLastChar(ch rune) {
	raw := []rune(s.String())
	if len(raw) == 0 {
		s.Set(string(ch))
		return
	}
	raw[len(raw)-1] = ch
	s.Set(string(raw))
}

// recalculateModifications re-derives modification placement now that the
// syllable's shape may have changed, per the rules in §4.D:
//
//   - with no consonants, placement cannot yet be disambiguated unless the
//     vowel is the "uoi" triphthong;
//   - a bare "uo" vowel with an initial consonant and no final consonant
//     defers until the final consonant is known (or confirmed absent);
//   - otherwise, modifications are deduplicated by kind (keeping the last
//     occurrence) and reapplied through ModifyLetter so their positions are
//     recomputed against the current shape.
func (s *Syllable) recalculateModifications() {
	if s.Initial == "" && s.Final == "" && !strings.EqualFold(s.Vowel, "uoi") {
		return
	}
	if strings.EqualFold(s.Vowel, "uo") && s.Initial != "" && s.Final == "" {
		return
	}

	kept := dedupModsByKind(s.modifications)
	s.modifications = nil
	for _, e := range kept {
		ModifyLetter(s, e.mod)
	}
}

// dedupModsByKind keeps only the last entry for each Modification kind,
// preserving the relative order of first appearance of each kind.
func dedupModsByKind(entries []modEntry) []modEntry {
	lastOfKind := map[Modification]modEntry{}
	var order []Modification
	for _, e := range entries {
		if _, seen := lastOfKind[e.mod]; !seen {
			order = append(order, e.mod)
		}
		lastOfKind[e.mod] = e
	}
	out := make([]modEntry, 0, len(order))
	for _, k := range order {
		out = append(out, lastOfKind[k])
	}
	return out
}

// String renders the syllable: start from initial+vowel+final, apply each
// letter modification, then apply the tone mark at the position chosen by
// the placement engine.
func (s *Syllable) String() string {
	runes := []rune(s.Initial + s.Vowel + s.Final)

	for _, e := range s.modifications {
		if e.index < 0 || e.index >= len(runes) {
			continue
		}
		if m := modificationMap(e.mod); m != nil {
			if replaced, ok := m[runes[e.index]]; ok {
				runes[e.index] = replaced
			}
		}
	}

	if s.HasTone {
		initialLen := len([]rune(s.Initial))
		vowelLen := len([]rune(s.Vowel))
		modifiedVowel := string(runes[initialLen : initialLen+vowelLen])
		pos := toneMarkPosition(initialLen, modifiedVowel, s.Final == "", s.AccentStyle)
		if pos >= 0 && pos < len(runes) {
			if m := toneMarkMap(s.ToneMark); m != nil {
				if replaced, ok := m[runes[pos]]; ok {
					runes[pos] = replaced
				}
			}
		}
	}

	return string(runes)
}

// extractTone scans raw for the first character carrying a tone mark.
func extractTone(raw string) (ToneMark, bool) {
	for _, r := range raw {
		if t := toneOf(r); t != ToneNone {
			return t, true
		}
	}
	return ToneNone, false
}

// extractModifications scans raw rune-by-rune (character indices, not
// bytes) and records a modEntry for every character carrying a letter
// modification.
func extractModifications(raw string) []modEntry {
	var entries []modEntry
	for i, r := range []rune(raw) {
		if m := modOf(r); m != ModNone {
			entries = append(entries, modEntry{index: i, mod: m})
		}
	}
	return entries
}
