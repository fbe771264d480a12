package engine

// AddTone sets tone on s. If s already carries exactly this tone, the tone
// is removed instead (a repeated tone keystroke clears it) and the result
// reports ToneMarkRemoved. If s has no vowel to place the tone mark on,
// placement cannot succeed and the keystroke is Ignored.
func AddTone(s *Syllable, tone ToneMark) (Transformation, TransformResult) {
	if s.HasTone && s.ToneMark == tone {
		s.HasTone = false
		s.ToneMark = ToneNone
		return ToneMarkRemoved, TransformResult{ToneMarkRemoved: true}
	}
	if s.Vowel == "" {
		return Ignored, TransformResult{}
	}
	s.ToneMark = tone
	s.HasTone = true
	return ToneMarkAdded, TransformResult{}
}

// RemoveTone clears any tone mark on s.
func RemoveTone(s *Syllable) (Transformation, TransformResult) {
	if !s.HasTone {
		return Ignored, TransformResult{}
	}
	s.HasTone = false
	s.ToneMark = ToneNone
	return ToneMarkRemoved, TransformResult{ToneMarkRemoved: true}
}

// ModifyLetter applies or removes mod on s. Positions are computed first,
// per §4.E's modificationPositions; if none exist - the vowel cluster is
// ambiguous for ModCircumflex (e.g. "ao" holds both "a" and "o"), or it is
// "oa" (or has no "u"/"o") for ModHorn - the keystroke is Ignored and the caller falls back to a literal letter.
//
// Only when every computed position already carries mod is the keystroke a
// toggle: the modification is removed from all of them and
// LetterModificationRemoved is reported. Otherwise mod is applied (or
// extended) to every computed position - ModHorn is the one modification
// that can land on two characters at once (the "uo" -> "ươ" diphthong), so
// a horn already on "u" alone is extended to also cover "o" rather than
// being stripped, while the others have only a single eligible position.
func ModifyLetter(s *Syllable, mod Modification) (Transformation, TransformResult) {
	positions := modificationPositions(s.Initial, s.Vowel, s.Final, mod)
	if len(positions) == 0 {
		return Ignored, TransformResult{}
	}

	allPresent := true
	for _, pos := range positions {
		if !hasModAt(s.modifications, pos, mod) {
			allPresent = false
			break
		}
	}

	if allPresent {
		at := map[int]bool{}
		for _, pos := range positions {
			at[pos] = true
		}
		filtered := make([]modEntry, 0, len(s.modifications))
		for _, e := range s.modifications {
			if !(e.mod == mod && at[e.index]) {
				filtered = append(filtered, e)
			}
		}
		s.modifications = filtered
		return LetterModificationRemoved, TransformResult{LetterModificationRemoved: true}
	}

	// At most one modification may occupy a given character index (I3): a
	// new modification bumps out whatever other-kind modification already
	// sat at the same position, e.g. Circumflex then Breve on "a" lands on
	// "ă", not a conflicting pair both targeting index 0.
	at := map[int]bool{}
	for _, pos := range positions {
		at[pos] = true
	}
	filtered := make([]modEntry, 0, len(s.modifications))
	for _, e := range s.modifications {
		if !at[e.index] {
			filtered = append(filtered, e)
		}
	}
	for _, pos := range positions {
		filtered = append(filtered, modEntry{index: pos, mod: mod})
	}
	s.modifications = filtered
	return LetterModificationAdded, TransformResult{}
}

// hasModAt reports whether entries contains mod at character index pos.
func hasModAt(entries []modEntry, pos int, mod Modification) bool {
	for _, e := range entries {
		if e.index == pos && e.mod == mod {
			return true
		}
	}
	return false
}
