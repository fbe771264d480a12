// Command gensyllables enumerates every well-formed Vietnamese syllable by
// combining initials, rhymes, and tones under the spelling rules kept in
// this command, printing one syllable per line.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/username/vicompose/internal/engine"
)

func main() {
	syllables := make(map[string]struct{})

	for _, initial := range initials() {
		for _, rhyme := range rhymes() {
			if !isValidCombination(initial, rhyme) {
				continue
			}
			base := initial + rhyme

			tones := []engine.ToneMark{engine.ToneNone}
			if !isCheckedRhyme(rhyme) {
				tones = []engine.ToneMark{
					engine.ToneNone, engine.ToneGrave, engine.ToneAcute,
					engine.ToneHookAbove, engine.ToneTilde, engine.ToneUnderdot,
				}
			} else {
				tones = []engine.ToneMark{engine.ToneAcute, engine.ToneUnderdot}
			}

			for _, tone := range tones {
				syllables[applyTone(base, initial, rhyme, tone)] = struct{}{}
			}
		}
	}

	sorted := make([]string, 0, len(syllables))
	for s := range syllables {
		sorted = append(sorted, s)
	}
	sort.Strings(sorted)

	for _, s := range sorted {
		fmt.Println(s)
	}
	fmt.Fprintf(os.Stderr, "\ngenerated %d unique syllables\n", len(sorted))
}

// isCheckedRhyme reports whether rhyme ends in a stop consonant, which in
// Vietnamese orthography restricts a syllable to only the sharp (sắc) and
// heavy (nặng) tones.
func isCheckedRhyme(rhyme string) bool {
	return strings.HasSuffix(rhyme, "c") || strings.HasSuffix(rhyme, "ch") ||
		strings.HasSuffix(rhyme, "p") || strings.HasSuffix(rhyme, "t")
}

// isValidCombination enforces the orthographic conventions that disallow
// certain initial/rhyme pairings (k/c/q spelling rules, "gi" before an
// i-initial rhyme).
func isValidCombination(initial, rhyme string) bool {
	first := rune(0)
	if rhyme != "" {
		first = []rune(rhyme)[0]
	}
	frontVowel := strings.ContainsRune("ieêy", first)

	switch initial {
	case "c", "g", "ng":
		if frontVowel {
			return false
		}
	case "k", "gh", "ngh":
		if !frontVowel {
			return false
		}
	case "qu":
		if strings.ContainsRune("uo", first) {
			return false
		}
	case "gi":
		if first == 'i' {
			return false
		}
	}
	return true
}

// applyTone places tone on the syllable formed by initial+rhyme, per the
// same priority order the placement engine uses for live composition:
// special diphthongs take the tone on their first vowel, "uy" rhymes
// without "ê" take it on the "y", otherwise the first vowel from the
// priority list that appears in rhyme wins, and a rhyme made only of
// i/u/ư/y takes it on its first letter.
func applyTone(base, initial, rhyme string, tone engine.ToneMark) string {
	if tone == engine.ToneNone {
		return base
	}

	var target rune
	switch {
	case rhyme == "ua" || rhyme == "ưa" || rhyme == "ia":
		target = []rune(rhyme)[0]
	case strings.Contains(rhyme, "uy") && !strings.ContainsRune(rhyme, 'ê'):
		target = 'y'
	default:
		for _, c := range []rune{'a', 'ă', 'â', 'o', 'ô', 'ơ', 'e', 'ê'} {
			if strings.ContainsRune(rhyme, c) {
				target = c
				break
			}
		}
	}
	if target == 0 {
		for _, c := range rhyme {
			if strings.ContainsRune("iuưy", c) {
				target = c
				break
			}
		}
	}
	if target == 0 {
		return base
	}

	idx := strings.IndexRune(base, target)
	if idx < 0 {
		return base
	}
	m := map[rune]rune(nil)
	switch tone {
	case engine.ToneAcute:
		m = map[rune]rune{'a': 'á', 'ă': 'ắ', 'â': 'ấ', 'e': 'é', 'ê': 'ế', 'i': 'í', 'o': 'ó', 'ô': 'ố', 'ơ': 'ớ', 'u': 'ú', 'ư': 'ứ', 'y': 'ý'}
	case engine.ToneGrave:
		m = map[rune]rune{'a': 'à', 'ă': 'ằ', 'â': 'ầ', 'e': 'è', 'ê': 'ề', 'i': 'ì', 'o': 'ò', 'ô': 'ồ', 'ơ': 'ờ', 'u': 'ù', 'ư': 'ừ', 'y': 'ỳ'}
	case engine.ToneHookAbove:
		m = map[rune]rune{'a': 'ả', 'ă': 'ẳ', 'â': 'ẩ', 'e': 'ẻ', 'ê': 'ể', 'i': 'ỉ', 'o': 'ỏ', 'ô': 'ổ', 'ơ': 'ở', 'u': 'ủ', 'ư': 'ử', 'y': 'ỷ'}
	case engine.ToneTilde:
		m = map[rune]rune{'a': 'ã', 'ă': 'ẵ', 'â': 'ẫ', 'e': 'ẽ', 'ê': 'ễ', 'i': 'ĩ', 'o': 'õ', 'ô': 'ỗ', 'ơ': 'ỡ', 'u': 'ũ', 'ư': 'ữ', 'y': 'ỹ'}
	case engine.ToneUnderdot:
		m = map[rune]rune{'a': 'ạ', 'ă': 'ặ', 'â': 'ậ', 'e': 'ẹ', 'ê': 'ệ', 'i': 'ị', 'o': 'ọ', 'ô': 'ộ', 'ơ': 'ợ', 'u': 'ụ', 'ư': 'ự', 'y': 'ỵ'}
	}
	toned, ok := m[target]
	if !ok {
		return base
	}

	runes := []rune(base)
	runeIdx := len([]rune(base[:idx]))
	runes[runeIdx] = toned
	return string(runes)
}

func initials() []string {
	return []string{
		"", "b", "c", "ch", "d", "đ", "g", "gh", "gi", "h", "k", "kh",
		"l", "m", "n", "ng", "ngh", "nh", "p", "ph", "qu", "r", "s",
		"t", "th", "tr", "v", "x",
	}
}

func rhymes() []string {
	return []string{
		"a", "ac", "ach", "ai", "am", "an", "ang", "anh", "ao", "ap", "at", "au", "ay",
		"e", "ec", "em", "en", "eng", "enh", "eo", "ep", "et",
		"i", "ia", "ich", "iêc", "iêm", "iên", "iêng", "iêp", "iêt", "iêu", "im", "in", "inh", "ip", "it", "iu",
		"o", "oa", "oac", "oach", "oai", "oam", "oan", "oang", "oanh", "oap", "oat", "oay", "oc", "oe",
		"oi", "om", "on", "ong", "op", "ot",
		"u", "ua", "uc", "ui", "um", "un", "ung", "uôc", "uôi", "uôm", "uôn",
		"uông", "uôp", "uôt", "up", "ut", "uy", "uych", "uyên", "uyêt", "uyn", "uynh", "uyt",
		"y", "yên", "yêt", "yêu",
		"ă", "ăc", "ăm", "ăn", "ăng", "ăp", "ăt",
		"â", "âc", "âm", "ân", "âng", "âp", "ât", "âu", "ây",
		"ê", "êc", "êch", "êm", "ên", "êng", "ênh", "êp", "êt", "êu",
		"ô", "ôc", "ôi", "ôm", "ôn", "ông", "ôp", "ôt",
		"ơ", "ơm", "ơn", "ơp", "ơt", "ơi",
		"ư", "ưc", "ưi", "ưm", "ưn", "ưng", "ưp", "ưt", "ưu",
		"ưa", "ươc", "ươi", "ươm", "ươn", "ương", "ươp", "ươt", "ươu",
	}
}
