package engine

// CleanChar strips every diacritic (tone mark and letter modification) from
// r, returning the plain ASCII base letter. Characters outside the mapped
// Vietnamese alphabet are returned unchanged.
//
// CleanChar is idempotent and composed with AddTone is the identity up to
// tone erasure.
func CleanChar(r rune) rune {
	if base, ok := baseOfToned[r]; ok {
		return CleanChar(base)
	}
	if base, ok := baseOfMod[r]; ok {
		return CleanChar(base)
	}
	return r
}

// RemoveToneMark strips only the tone mark from r, preserving any letter
// modification (ấ -> â, but â -> â).
func RemoveToneMark(r rune) rune {
	if base, ok := baseOfToned[r]; ok {
		return base
	}
	return r
}

// toneOf returns the tone mark carried by r, or ToneNone if r carries none.
func toneOf(r rune) ToneMark {
	if t, ok := toneOfChar[r]; ok {
		return t
	}
	return ToneNone
}

// modOf returns the letter modification carried by r, or ModNone if r
// carries none.
func modOf(r rune) Modification {
	if m, ok := modOfChar[r]; ok {
		return m
	}
	return ModNone
}
