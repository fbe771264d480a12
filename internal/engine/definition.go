package engine

import "strings"

// Telex is the standard Telex typing method: tone marks on s/f/r/x/j, tone
// removal on z, circumflex on doubled a/e/o, breve on "w" after "a", horn
// on "w" after o/u, and đ on doubled d.
var Telex = Definition{
	's': {{Kind: ActionAddToneMark, Tone: ToneAcute}},
	'f': {{Kind: ActionAddToneMark, Tone: ToneGrave}},
	'r': {{Kind: ActionAddToneMark, Tone: ToneHookAbove}},
	'x': {{Kind: ActionAddToneMark, Tone: ToneTilde}},
	'j': {{Kind: ActionAddToneMark, Tone: ToneUnderdot}},
	'z': {{Kind: ActionRemoveToneMark}},

	// a/e/o double as both plain vowel letters and their own circumflex
	// trigger, so each one only fires when the previous letter the driver
	// saw is that same letter - "aa" -> â, but "cha"+"o" stays "chao"
	// (extending the vowel), not "châo".
	'a': {{Kind: ActionModifyLetter, Mod: ModCircumflex, PreviousLetterGate: isLetter('a')}},
	'e': {{Kind: ActionModifyLetter, Mod: ModCircumflex, PreviousLetterGate: isLetter('e')}},
	'o': {{Kind: ActionModifyLetter, Mod: ModCircumflex, PreviousLetterGate: isLetter('o')}},
	'd': {{Kind: ActionModifyLetter, Mod: ModDyet, PreviousLetterGate: isLetter('d')}},

	// 'w' is Telex's multi-purpose hook key: if a prior bare "w" already
	// inserted a literal ư/Ư on an empty vowel, a second "w" undoes that
	// shorthand back to a literal "w" (ActionResetInsertedHornU); otherwise
	// on an empty vowel it inserts literal ư/Ư (ActionInsertHornU); after
	// "a" it applies breve (ă); after "o"/"u" it applies horn (ơ/ư). The
	// gates make these mutually exclusive, so trying them in order is
	// enough to pick the right one.
	'w': {
		{Kind: ActionResetInsertedHornU},
		{Kind: ActionInsertHornU},
		{Kind: ActionModifyLetter, Mod: ModBreve, PreviousLetterGate: isLetter('a')},
		{Kind: ActionModifyLetter, Mod: ModHorn, PreviousLetterGate: isAnyLetter('u', 'o')},
	},
}

// isLetter returns a PreviousLetterGate that requires the previous content
// letter to equal want.
func isLetter(want rune) func(rune) bool {
	return func(prev rune) bool { return prev == want }
}

// isAnyLetter returns a PreviousLetterGate that requires the previous
// content letter to be one of wants.
func isAnyLetter(wants ...rune) func(rune) bool {
	return func(prev rune) bool {
		for _, w := range wants {
			if prev == w {
				return true
			}
		}
		return false
	}
}

// VNI is the VNI typing method: tone marks and modifications are both
// triggered by digits typed immediately after the target letter.
var VNI = Definition{
	'1': {{Kind: ActionAddToneMark, Tone: ToneAcute}},
	'2': {{Kind: ActionAddToneMark, Tone: ToneGrave}},
	'3': {{Kind: ActionAddToneMark, Tone: ToneHookAbove}},
	'4': {{Kind: ActionAddToneMark, Tone: ToneTilde}},
	'5': {{Kind: ActionAddToneMark, Tone: ToneUnderdot}},
	'0': {{Kind: ActionRemoveToneMark}},

	'6': {{Kind: ActionModifyLetter, Mod: ModCircumflex}},
	'7': {{Kind: ActionModifyLetter, Mod: ModHorn}},
	'8': {{Kind: ActionModifyLetter, Mod: ModBreve}},
	'9': {{Kind: ActionModifyLetter, Mod: ModDyet}},
}

// DefinitionByName resolves a typing method name ("telex"/"vni", any case)
// to its Definition, for collaborators that accept a config string.
func DefinitionByName(name string) (Definition, bool) {
	switch strings.ToLower(name) {
	case "telex":
		return Telex, true
	case "vni":
		return VNI, true
	default:
		return nil, false
	}
}
