package engine

import "testing"

func TestToneMarkMap(t *testing.T) {
	tests := []struct {
		name     string
		vowel    rune
		tone     ToneMark
		expected rune
	}{
		{"a with acute", 'a', ToneAcute, 'á'},
		{"a with grave", 'a', ToneGrave, 'à'},
		{"a with hook above", 'a', ToneHookAbove, 'ả'},
		{"a with tilde", 'a', ToneTilde, 'ã'},
		{"a with underdot", 'a', ToneUnderdot, 'ạ'},
		{"uppercase A with acute", 'A', ToneAcute, 'Á'},
		{"ă with acute", 'ă', ToneAcute, 'ắ'},
		{"â with grave", 'â', ToneGrave, 'ầ'},
		{"ê with hook above", 'ê', ToneHookAbove, 'ể'},
		{"ô with tilde", 'ô', ToneTilde, 'ỗ'},
		{"ơ with underdot", 'ơ', ToneUnderdot, 'ợ'},
		{"ư with acute", 'ư', ToneAcute, 'ứ'},
		{"y with grave", 'y', ToneGrave, 'ỳ'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := toneMarkMap(tt.tone)
			got, ok := m[tt.vowel]
			if !ok || got != tt.expected {
				t.Errorf("toneMarkMap(%v)[%c] = %c, %v; want %c", tt.tone, tt.vowel, got, ok, tt.expected)
			}
		})
	}
}

func TestToneMarkMapNone(t *testing.T) {
	if m := toneMarkMap(ToneNone); m != nil {
		t.Errorf("toneMarkMap(ToneNone) = %v, want nil", m)
	}
}

func TestModificationMap(t *testing.T) {
	tests := []struct {
		name     string
		base     rune
		mod      Modification
		expected rune
	}{
		{"a with circumflex", 'a', ModCircumflex, 'â'},
		{"e with circumflex", 'e', ModCircumflex, 'ê'},
		{"o with circumflex", 'o', ModCircumflex, 'ô'},
		{"a with breve", 'a', ModBreve, 'ă'},
		{"u with horn", 'u', ModHorn, 'ư'},
		{"o with horn", 'o', ModHorn, 'ơ'},
		{"d with dyet", 'd', ModDyet, 'đ'},
		{"D with dyet", 'D', ModDyet, 'Đ'},
		{"toned á with circumflex", 'á', ModCircumflex, 'ấ'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := modificationMap(tt.mod)
			got, ok := m[tt.base]
			if !ok || got != tt.expected {
				t.Errorf("modificationMap(%v)[%c] = %c, %v; want %c", tt.mod, tt.base, got, ok, tt.expected)
			}
		})
	}
}

func TestIsVowel(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'a', true}, {'e', true}, {'i', true}, {'o', true}, {'u', true}, {'y', true},
		{'ă', true}, {'â', true}, {'ê', true}, {'ô', true}, {'ơ', true}, {'ư', true},
		{'á', false}, // IsVowel only recognizes the clean alphabet, not toned forms
		{'b', false}, {'d', false}, {'1', false}, {' ', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := IsVowel(tt.char); got != tt.expected {
				t.Errorf("IsVowel(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestIsModifiedVowel(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'ă', true}, {'â', true}, {'ê', true}, {'ô', true}, {'ơ', true}, {'ư', true},
		{'a', false}, {'e', false}, {'o', false}, {'u', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := IsModifiedVowel(tt.char); got != tt.expected {
				t.Errorf("IsModifiedVowel(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestIsModifiableVowel(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'a', true}, {'e', true}, {'o', true}, {'u', true},
		{'i', false}, {'y', false}, {'â', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := IsModifiableVowel(tt.char); got != tt.expected {
				t.Errorf("IsModifiableVowel(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestIsConsonant(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'b', true}, {'c', true}, {'d', true}, {'đ', true}, {'g', true},
		{'h', true}, {'k', true}, {'l', true}, {'m', true}, {'n', true},
		{'p', true}, {'q', true}, {'r', true}, {'s', true}, {'t', true},
		{'v', true}, {'x', true},
		{'a', false}, {'e', false}, {'1', false}, {' ', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := IsConsonant(tt.char); got != tt.expected {
				t.Errorf("IsConsonant(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestLowerVN(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'A', 'a'}, {'Z', 'z'}, {'Ă', 'ă'}, {'Â', 'â'}, {'Ê', 'ê'},
		{'Ô', 'ô'}, {'Ơ', 'ơ'}, {'Ư', 'ư'}, {'Đ', 'đ'}, {'a', 'a'}, {'1', '1'},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := lowerVN(tt.in); got != tt.want {
				t.Errorf("lowerVN(%c) = %c, want %c", tt.in, got, tt.want)
			}
		})
	}
}
