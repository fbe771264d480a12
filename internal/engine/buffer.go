package engine

// TransformBuffer composes the whole string raw in one call, using the New
// accent style, by replaying its characters through a fresh Driver. It
// must be equivalent to folding the same characters one at a time through
// an IncrementalBuffer; tests in this package assert that equivalence. The
// returned TransformResult accumulates over every keystroke in raw, not
// just the last one.
func TransformBuffer(def Definition, raw string) (string, TransformResult) {
	return TransformBufferWithStyle(def, raw, AccentNew)
}

// TransformBufferWithStyle is TransformBuffer with an explicit AccentStyle.
func TransformBufferWithStyle(def Definition, raw string, style AccentStyle) (string, TransformResult) {
	d := NewDriver(def, style)
	var out []rune
	for _, r := range raw {
		if isWordBreak(r) {
			out = append(out, []rune(d.View())...)
			out = append(out, r)
			d.Reset()
			continue
		}
		d.PushChar(r)
	}
	out = append(out, []rune(d.View())...)
	return string(out), d.Cumulative
}

// isWordBreak reports whether r ends a word: whitespace and the common
// ASCII punctuation marks, matching how a text-editing application
// delivers a commit boundary to an input method.
func isWordBreak(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r',
		'.', ',', '!', '?', ';', ':',
		'(', ')', '[', ']', '{', '}',
		'"', '\'', '/', '\\', '-':
		return true
	default:
		return false
	}
}
