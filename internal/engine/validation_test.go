package engine

import "testing"

func TestIsValidInitial(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"b", true},
		{"ch", true},
		{"ngh", true},
		{"qu", true},
		{"gi", true},
		{"đ", true},
		{"Đ", true},
		{"x", true},
		{"w", false},
		{"z", false},
		{"fgh", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidInitial(tt.in); got != tt.want {
				t.Errorf("IsValidInitial(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidFinal(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"c", true},
		{"ch", true},
		{"ng", true},
		{"nh", true},
		{"x", false},
		{"b", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidFinal(tt.in); got != tt.want {
				t.Errorf("IsValidFinal(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidSyllable(t *testing.T) {
	tests := []struct {
		name string
		s    *Syllable
		want bool
	}{
		{"well-formed word", &Syllable{Initial: "ch", Vowel: "a"}, true},
		{"invalid initial cluster", &Syllable{Initial: "z"}, false},
		{"invalid final cluster", &Syllable{Initial: "t", Vowel: "a", Final: "x"}, false},
		{"forbidden c-before-e spelling", &Syllable{Initial: "c", Vowel: "e"}, false},
		{"partial state with no vowel yet is valid", &Syllable{Initial: "đ"}, true},
		{"empty syllable is valid", &Syllable{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSyllable(tt.s); got != tt.want {
				t.Errorf("IsValidSyllable(%+v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
