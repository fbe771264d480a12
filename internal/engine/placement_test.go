package engine

import "testing"

func TestToneMarkPosition(t *testing.T) {
	tests := []struct {
		name       string
		initialLen int
		vowel      string
		finalEmpty bool
		style      AccentStyle
		want       int
	}{
		{"single vowel", 1, "a", true, AccentNew, 1},
		{"contains ơ", 0, "uơ", true, AccentNew, 1},
		{"contains ê", 1, "iê", false, AccentNew, 2},
		{"contains â", 0, "oâ", true, AccentNew, 1},
		{"special pair oa, new style", 1, "oa", true, AccentNew, 2},
		{"special pair oa, old style", 1, "oa", true, AccentOld, 1},
		{"special pair uo, new style", 2, "uo", false, AccentNew, 3},
		{"special pair uo, old style", 2, "uo", false, AccentOld, 2},
		{"no final, two letters, default", 1, "ua", true, AccentNew, 1},
		{"with final, two letters, default", 1, "ia", false, AccentNew, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toneMarkPosition(tt.initialLen, tt.vowel, tt.finalEmpty, tt.style)
			if got != tt.want {
				t.Errorf("toneMarkPosition(%d, %q, %v, %v) = %d, want %d",
					tt.initialLen, tt.vowel, tt.finalEmpty, tt.style, got, tt.want)
			}
		})
	}
}

func TestToneMarkPositionEmptyVowel(t *testing.T) {
	if got := toneMarkPosition(1, "", true, AccentNew); got != -1 {
		t.Errorf("toneMarkPosition with empty vowel = %d, want -1", got)
	}
}

func TestModificationPositionsCircumflex(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		vowel   string
		final   string
		want    []int
	}{
		{"single a", "ch", "a", "", []int{2}},
		{"single e", "v", "ie", "t", []int{2}},
		{"single o", "t", "o", "t", []int{1}},
		{"ambiguous ao, both present", "ch", "ao", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modificationPositions(tt.initial, tt.vowel, tt.final, ModCircumflex)
			if !intSliceEqual(got, tt.want) {
				t.Errorf("modificationPositions(%q,%q,%q,Circumflex) = %v, want %v", tt.initial, tt.vowel, tt.final, got, tt.want)
			}
		})
	}
}

func TestModificationPositionsBreve(t *testing.T) {
	got := modificationPositions("", "a", "", ModBreve)
	if !intSliceEqual(got, []int{0}) {
		t.Errorf("modificationPositions for breve = %v, want [0]", got)
	}
	if got := modificationPositions("", "o", "", ModBreve); got != nil {
		t.Errorf("modificationPositions for breve on o = %v, want nil", got)
	}
}

func TestModificationPositionsHorn(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		vowel   string
		final   string
		want    []int
	}{
		{"bare u", "t", "u", "", []int{1}},
		{"bare o", "", "o", "n", []int{0}},
		{"oa never takes horn", "", "oa", "", nil},
		{"uo with initial, no final defers to second char only", "ng", "uo", "", []int{3}},
		{"uo with no initial takes both", "", "uo", "i", []int{0, 1}},
		{"uoi triphthong takes both", "ng", "uoi", "", []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modificationPositions(tt.initial, tt.vowel, tt.final, ModHorn)
			if !intSliceEqual(got, tt.want) {
				t.Errorf("modificationPositions(%q,%q,%q,Horn) = %v, want %v", tt.initial, tt.vowel, tt.final, got, tt.want)
			}
		})
	}
}

func TestModificationPositionsDyet(t *testing.T) {
	got := modificationPositions("d", "", "", ModDyet)
	if !intSliceEqual(got, []int{0}) {
		t.Errorf("modificationPositions for dyet = %v, want [0]", got)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
