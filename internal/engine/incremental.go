package engine

// IncrementalBuffer composes one word at a time from individual keystrokes,
// wrapping a Driver with the word-boundary and backspace handling a
// frontend collaborator needs: Push for each typed character, Backspace to
// undo the last one, and Clear at a word boundary (space, punctuation,
// commit).
type IncrementalBuffer struct {
	driver *Driver
}

// NewIncrementalBuffer returns an empty buffer using the given Definition
// and AccentStyle.
func NewIncrementalBuffer(def Definition, style AccentStyle) *IncrementalBuffer {
	return &IncrementalBuffer{driver: NewDriver(def, style)}
}

// Push processes one keystroke and returns the buffer's new render plus
// the TransformResult delta this keystroke alone caused.
func (b *IncrementalBuffer) Push(ch rune) (string, TransformResult) {
	return b.driver.PushChar(ch)
}

// View returns the buffer's current composed render without modifying it.
func (b *IncrementalBuffer) View() string {
	return b.driver.View()
}

// Input returns the raw keystrokes composing the current word.
func (b *IncrementalBuffer) Input() string {
	return b.driver.Literal()
}

// Len reports the number of keystrokes typed since the last Clear.
func (b *IncrementalBuffer) Len() int {
	return len([]rune(b.driver.Literal()))
}

// IsEmpty reports whether the buffer holds no keystrokes.
func (b *IncrementalBuffer) IsEmpty() bool {
	return b.driver.IsEmpty()
}

// Clear resets the buffer to empty, as at a word boundary.
func (b *IncrementalBuffer) Clear() {
	b.driver.Reset()
	b.driver.Cumulative = TransformResult{}
}

// Result reports whether any tone mark or letter modification was ever
// stripped during the composition of the current word.
func (b *IncrementalBuffer) Result() TransformResult {
	return b.driver.Cumulative
}

// Backspace removes the last keystroke and returns the buffer's new
// render. If the last keystroke was a bare "w" auto-inserted as "ư", the
// undo restores the literal "w" instead of deleting a character, matching
// what the user actually typed. Otherwise the buffer is rebuilt from
// scratch by replaying every remaining keystroke, since a keystroke late
// in the word (e.g. a final consonant) can change how an earlier
// transform keystroke was resolved.
func (b *IncrementalBuffer) Backspace() string {
	if b.driver.UndoInsertedHornU() {
		return b.View()
	}

	literal := []rune(b.driver.Literal())
	if len(literal) == 0 {
		return b.View()
	}
	literal = literal[:len(literal)-1]

	fresh := NewDriver(b.driver.def, b.driver.style)
	for _, r := range literal {
		fresh.PushChar(r)
	}
	b.driver = fresh
	return b.View()
}
