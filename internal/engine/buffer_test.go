package engine

import "testing"

func TestTransformBufferTelex(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"vieetj", "việt"},
		{"chaof", "chào"},
		{"xin chaof", "xin chào"},
		{"nguwowfi", "người"},
		{"tuyeejt", "tuyệt"},
		{"ddeemj", "đệm"},
		{"hoas", "hoá"},
		{"toans", "toán"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, _ := TransformBuffer(Telex, tt.raw)
			if got != tt.expected {
				t.Errorf("TransformBuffer(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestTransformBufferVNI(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"vie65t", "việt"},
		{"cha2o", "chào"},
		{"to1an", "toán"},
		{"d9e65m", "đệm"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, _ := TransformBuffer(VNI, tt.raw)
			if got != tt.expected {
				t.Errorf("TransformBuffer(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

// TestIncrementalMatchesBatch asserts the equivalence invariant: folding
// characters one at a time through an IncrementalBuffer must produce the
// same final render as TransformBuffer on the whole string at once (P3).
func TestIncrementalMatchesBatch(t *testing.T) {
	words := []string{"vieetj", "chaof", "nguwowfi", "tuyeejt", "ddeemj", "hoas", "toans"}

	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			batch, _ := TransformBuffer(Telex, w)

			buf := NewIncrementalBuffer(Telex, AccentNew)
			var last string
			for _, r := range w {
				last, _ = buf.Push(r)
			}
			if last != batch {
				t.Errorf("incremental result %q != batch result %q", last, batch)
			}
			if last != buf.View() {
				t.Errorf("buffer.View() %q disagrees with last Push result %q", buf.View(), last)
			}
		})
	}
}

func TestTransformBufferWordBreaks(t *testing.T) {
	got, _ := TransformBuffer(Telex, "chaof ddangf toots")
	want := "chào đàng tốt"
	if got != want {
		t.Errorf("TransformBuffer with spaces = %q, want %q", got, want)
	}
}

// TestTransformBufferAccentStyle covers GLOSSARY's Old vs New accent style
// distinction on an open diphthong: New puts the tone on the later vowel
// ("hoà"), Old on the earlier one ("hóa") - scenario 10.
func TestTransformBufferAccentStyle(t *testing.T) {
	newStyle, _ := TransformBufferWithStyle(Telex, "hoas", AccentNew)
	if newStyle != "hoá" {
		t.Errorf("New style TransformBufferWithStyle(%q) = %q, want %q", "hoas", newStyle, "hoá")
	}

	oldStyle, _ := TransformBufferWithStyle(Telex, "hoas", AccentOld)
	if oldStyle != "hóa" {
		t.Errorf("Old style TransformBufferWithStyle(%q) = %q, want %q", "hoas", oldStyle, "hóa")
	}
}

// TestToneToggle covers P4 and the same tone-toggle rule as scenario 6: a
// tone removed by pressing its own key again (rather than an explicit
// remove key) is not treated as "performing" a transform, so the second
// keystroke also lands as a literal character instead of being swallowed.
func TestToneToggle(t *testing.T) {
	got, result := TransformBuffer(VNI, "vit55")
	if got != "vit5" {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "vit55", got, "vit5")
	}
	if !result.ToneMarkRemoved {
		t.Errorf("TransformBuffer(%q) result = %+v, want ToneMarkRemoved", "vit55", result)
	}
}

// TestExplicitRemoveTone covers scenarios 4-6: an explicit remove action
// after a tone was set, then a second remove on a tone-free syllable (or a
// repeated tone key, which toggles the tone off) falls through to literal
// text.
func TestExplicitRemoveTone(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"vit50", "vit"},
		{"vit500", "vit0"},
		{"a11", "a1"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, _ := TransformBuffer(VNI, tt.raw)
			if got != tt.expected {
				t.Errorf("TransformBuffer(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

// TestVNIRepeatedToneChange covers scenario 3: two tone changes in a row,
// the second replacing the first rather than toggling it off.
func TestVNIRepeatedToneChange(t *testing.T) {
	got, _ := TransformBuffer(VNI, "hoang23")
	want := "hoảng"
	if got != want {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "hoang23", got, want)
	}
}

// TestTelexDoubleLetterModifiers covers scenario 9: "aa" composes â, and a
// following "w" replaces the circumflex with a breve at the same position.
func TestTelexDoubleLetterModifiers(t *testing.T) {
	got, _ := TransformBuffer(Telex, "aa")
	if got != "â" {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "aa", got, "â")
	}

	got, _ = TransformBuffer(Telex, "aaw")
	if got != "ă" {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "aaw", got, "ă")
	}
}

// TestTelexVowelLetterNotMistakenForModifier guards against the bug where
// "o" after "a" (extending the vowel cluster, as in "chao") gets mistaken
// for the circumflex-on-"o" double-letter trigger and mangles the vowel.
func TestTelexVowelLetterNotMistakenForModifier(t *testing.T) {
	got, _ := TransformBuffer(Telex, "chao")
	if got != "chao" {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "chao", got, "chao")
	}
}

// TestTelexNoVowelFallsThrough covers scenario 11: a tone-mark trigger
// typed with no vowel present yet has nothing to attach to, so both
// keystrokes fall through as literal text.
func TestTelexNoVowelFallsThrough(t *testing.T) {
	got, _ := TransformBuffer(Telex, "jj")
	if got != "jj" {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "jj", got, "jj")
	}
}

// TestTelexHornUShorthand covers scenario 12: "w" on an empty syllable
// inserts a literal ư, and a second "w" undoes that back to literal "w".
func TestTelexHornUShorthand(t *testing.T) {
	buf := NewIncrementalBuffer(Telex, AccentNew)

	got, _ := buf.Push('w')
	if got != "ư" {
		t.Errorf("first Push('w') = %q, want %q", got, "ư")
	}

	got, _ = buf.Push('w')
	if got != "w" {
		t.Errorf("second Push('w') = %q, want %q", got, "w")
	}
	if buf.Input() != "ww" {
		t.Errorf("Input() = %q, want %q", buf.Input(), "ww")
	}
}

// TestTelexDdInitialWithoutVowel exercises forming "đ" from a doubled "d"
// before any vowel has been typed (as in typing "đi" one key at a time),
// which must not be rejected for lacking a vowel mid-composition.
func TestTelexDdInitialWithoutVowel(t *testing.T) {
	got, _ := TransformBuffer(Telex, "ddi")
	want := "đi"
	if got != want {
		t.Errorf("TransformBuffer(%q) = %q, want %q", "ddi", got, want)
	}
}
