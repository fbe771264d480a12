package engine

// Unicode tables: immutable at program start, addressable by character.
// Each map below goes from a base letter to the letter carrying one
// diacritic, covering both cases and the already-modified base letters
// (á -> ấ) so chains like Circumflex-then-Acute compose correctly.

// acuteMap etc. map a clean or already-modified base letter to the
// character carrying the named tone mark (dấu sắc, huyền, hỏi, ngã, nặng).
var acuteMap = map[rune]rune{
	'a': 'á', 'ă': 'ắ', 'â': 'ấ', 'e': 'é', 'ê': 'ế', 'i': 'í',
	'o': 'ó', 'ô': 'ố', 'ơ': 'ớ', 'u': 'ú', 'ư': 'ứ', 'y': 'ý',
	'A': 'Á', 'Ă': 'Ắ', 'Â': 'Ấ', 'E': 'É', 'Ê': 'Ế', 'I': 'Í',
	'O': 'Ó', 'Ô': 'Ố', 'Ơ': 'Ớ', 'U': 'Ú', 'Ư': 'Ứ', 'Y': 'Ý',
}

var graveMap = map[rune]rune{
	'a': 'à', 'ă': 'ằ', 'â': 'ầ', 'e': 'è', 'ê': 'ề', 'i': 'ì',
	'o': 'ò', 'ô': 'ồ', 'ơ': 'ờ', 'u': 'ù', 'ư': 'ừ', 'y': 'ỳ',
	'A': 'À', 'Ă': 'Ằ', 'Â': 'Ầ', 'E': 'È', 'Ê': 'Ề', 'I': 'Ì',
	'O': 'Ò', 'Ô': 'Ồ', 'Ơ': 'Ờ', 'U': 'Ù', 'Ư': 'Ừ', 'Y': 'Ỳ',
}

var hookAboveMap = map[rune]rune{
	'a': 'ả', 'ă': 'ẳ', 'â': 'ẩ', 'e': 'ẻ', 'ê': 'ể', 'i': 'ỉ',
	'o': 'ỏ', 'ô': 'ổ', 'ơ': 'ở', 'u': 'ủ', 'ư': 'ử', 'y': 'ỷ',
	'A': 'Ả', 'Ă': 'Ẳ', 'Â': 'Ẩ', 'E': 'Ẻ', 'Ê': 'Ể', 'I': 'Ỉ',
	'O': 'Ỏ', 'Ô': 'Ổ', 'Ơ': 'Ở', 'U': 'Ủ', 'Ư': 'Ử', 'Y': 'Ỷ',
}

var tildeMap = map[rune]rune{
	'a': 'ã', 'ă': 'ẵ', 'â': 'ẫ', 'e': 'ẽ', 'ê': 'ễ', 'i': 'ĩ',
	'o': 'õ', 'ô': 'ỗ', 'ơ': 'ỡ', 'u': 'ũ', 'ư': 'ữ', 'y': 'ỹ',
	'A': 'Ã', 'Ă': 'Ẵ', 'Â': 'Ẫ', 'E': 'Ẽ', 'Ê': 'Ễ', 'I': 'Ĩ',
	'O': 'Õ', 'Ô': 'Ỗ', 'Ơ': 'Ỡ', 'U': 'Ũ', 'Ư': 'Ữ', 'Y': 'Ỹ',
}

var dotMap = map[rune]rune{
	'a': 'ạ', 'ă': 'ặ', 'â': 'ậ', 'e': 'ẹ', 'ê': 'ệ', 'i': 'ị',
	'o': 'ọ', 'ô': 'ộ', 'ơ': 'ợ', 'u': 'ụ', 'ư': 'ự', 'y': 'ỵ',
	'A': 'Ạ', 'Ă': 'Ặ', 'Â': 'Ậ', 'E': 'Ẹ', 'Ê': 'Ệ', 'I': 'Ị',
	'O': 'Ọ', 'Ô': 'Ộ', 'Ơ': 'Ợ', 'U': 'Ụ', 'Ư': 'Ự', 'Y': 'Ỵ',
}

// circumflexMap etc. map a (possibly toned) base letter to the letter
// carrying the named letter modification, so modification can be applied
// before or after a tone mark.
var circumflexMap = map[rune]rune{
	'a': 'â', 'á': 'ấ', 'à': 'ầ', 'ả': 'ẩ', 'ã': 'ẫ', 'ạ': 'ậ',
	'e': 'ê', 'é': 'ế', 'è': 'ề', 'ẻ': 'ể', 'ẽ': 'ễ', 'ẹ': 'ệ',
	'o': 'ô', 'ó': 'ố', 'ò': 'ồ', 'ỏ': 'ổ', 'õ': 'ỗ', 'ọ': 'ộ',
	'A': 'Â', 'Á': 'Ấ', 'À': 'Ầ', 'Ả': 'Ẩ', 'Ã': 'Ẫ', 'Ạ': 'Ậ',
	'E': 'Ê', 'É': 'Ế', 'È': 'Ề', 'Ẻ': 'Ể', 'Ẽ': 'Ễ', 'Ẹ': 'Ệ',
	'O': 'Ô', 'Ó': 'Ố', 'Ò': 'Ồ', 'Ỏ': 'Ổ', 'Õ': 'Ỗ', 'Ọ': 'Ộ',
}

var breveMap = map[rune]rune{
	'a': 'ă', 'á': 'ắ', 'à': 'ằ', 'ả': 'ẳ', 'ã': 'ẵ', 'ạ': 'ặ',
	'A': 'Ă', 'Á': 'Ắ', 'À': 'Ằ', 'Ả': 'Ẳ', 'Ã': 'Ẵ', 'Ạ': 'Ặ',
}

var hornMap = map[rune]rune{
	'u': 'ư', 'ú': 'ứ', 'ù': 'ừ', 'ủ': 'ử', 'ũ': 'ữ', 'ụ': 'ự',
	'o': 'ơ', 'ó': 'ớ', 'ò': 'ờ', 'ỏ': 'ở', 'õ': 'ỡ', 'ọ': 'ợ',
	'U': 'Ư', 'Ú': 'Ứ', 'Ù': 'Ừ', 'Ủ': 'Ử', 'Ũ': 'Ữ', 'Ụ': 'Ự',
	'O': 'Ơ', 'Ó': 'Ớ', 'Ò': 'Ờ', 'Ỏ': 'Ở', 'Õ': 'Ỡ', 'Ọ': 'Ợ',
}

var dyetMap = map[rune]rune{
	'd': 'đ', 'D': 'Đ',
}

// inverse maps are built once at init from the forward tables above, letting
// CleanChar/RemoveToneMark run as O(1) lookups instead of the teacher's
// linear string scans.
var (
	toneOfChar  = map[rune]ToneMark{}
	baseOfToned = map[rune]rune{}

	inverseModMaps = []struct {
		mod Modification
		m   map[rune]rune
	}{
		{ModCircumflex, circumflexMap},
		{ModBreve, breveMap},
		{ModHorn, hornMap},
		{ModDyet, dyetMap},
	}
	modOfChar          = map[rune]Modification{}
	baseOfMod          = map[rune]rune{}
	vowelSet           = map[rune]bool{'a': true, 'ă': true, 'â': true, 'e': true, 'ê': true, 'i': true, 'o': true, 'ô': true, 'ơ': true, 'u': true, 'ư': true, 'y': true}
	modifiedVowelSet   = map[rune]bool{'ă': true, 'â': true, 'ê': true, 'ô': true, 'ơ': true, 'ư': true}
	modifiableVowelSet = map[rune]bool{'a': true, 'e': true, 'o': true, 'u': true}
	consonantSet       = map[rune]bool{'b': true, 'c': true, 'd': true, 'đ': true, 'g': true, 'h': true, 'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'v': true, 'x': true}
)

func init() {
	tones := []struct {
		tone ToneMark
		m    map[rune]rune
	}{
		{ToneAcute, acuteMap},
		{ToneGrave, graveMap},
		{ToneHookAbove, hookAboveMap},
		{ToneTilde, tildeMap},
		{ToneUnderdot, dotMap},
	}
	for _, t := range tones {
		for base, toned := range t.m {
			toneOfChar[toned] = t.tone
			baseOfToned[toned] = base
		}
	}
	for _, entry := range inverseModMaps {
		for base, modded := range entry.m {
			modOfChar[modded] = entry.mod
			baseOfMod[modded] = base
		}
	}
}

// toneMarkMap returns the base->toned table for a tone, or nil for ToneNone.
func toneMarkMap(tone ToneMark) map[rune]rune {
	switch tone {
	case ToneAcute:
		return acuteMap
	case ToneGrave:
		return graveMap
	case ToneHookAbove:
		return hookAboveMap
	case ToneTilde:
		return tildeMap
	case ToneUnderdot:
		return dotMap
	default:
		return nil
	}
}

// modificationMap returns the base->modified table for a Modification, or
// nil for ModNone.
func modificationMap(mod Modification) map[rune]rune {
	switch mod {
	case ModCircumflex:
		return circumflexMap
	case ModBreve:
		return breveMap
	case ModHorn:
		return hornMap
	case ModDyet:
		return dyetMap
	default:
		return nil
	}
}

// IsVowel reports whether r (in either case) is a clean Vietnamese vowel.
func IsVowel(r rune) bool {
	return vowelSet[lowerVN(r)]
}

// IsModifiedVowel reports whether r already carries a letter modification
// (ă, â, ê, ô, ơ, ư in either case).
func IsModifiedVowel(r rune) bool {
	return modifiedVowelSet[lowerVN(r)]
}

// IsModifiableVowel reports whether r is a base vowel that some
// Modification can still be applied to (a, e, o, u).
func IsModifiableVowel(r rune) bool {
	return modifiableVowelSet[lowerVN(r)]
}

// IsConsonant reports whether r is one of the 17 simple Vietnamese
// consonant letters (đ included).
func IsConsonant(r rune) bool {
	return consonantSet[lowerVN(r)]
}

// lowerVN lowercases a Vietnamese letter without pulling in unicode.ToLower's
// full Unicode case-folding table, since the engine only ever needs to fold
// the closed alphabet above.
func lowerVN(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r == 'Ă':
		return 'ă'
	case r == 'Â':
		return 'â'
	case r == 'Ê':
		return 'ê'
	case r == 'Ô':
		return 'ô'
	case r == 'Ơ':
		return 'ơ'
	case r == 'Ư':
		return 'ư'
	case r == 'Đ':
		return 'đ'
	default:
		return r
	}
}
