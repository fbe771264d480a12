package engine

// Driver turns a stream of keystrokes into a composed Syllable, using a
// Definition (Telex or VNI) to decide which keystrokes are transforms and
// which are literal letters.
//
// Each keystroke tries the Actions registered for its key in order, skipping
// any whose gate (PreviousLetterGate, or an Action-specific condition like
// "vowel is empty") doesn't hold for the driver's current state. The
// first Action whose gate holds is executed against the syllable - always
// mutating it, even when the result turns out to be a no-op - and its
// Transformation classifies whether the keystroke "performed" a transform:
//
//   - performed: the rendered syllable is validated; on failure the whole
//     attempt is abandoned and the syllable is reset to the literal
//     concatenation of the prior render and this keystroke (rollback).
//   - not performed (Ignored, a modification toggled back off, or a tone
//     toggled off by an ActionAddToneMark rather than an explicit
//     ActionRemoveToneMark): whatever mutation already happened stands, and
//     the keystroke itself is additionally appended as a literal character
//     on top of it - it is not rolled back.
//
// This is what lets typing tool/trigger letters like "s" or "j" at the
// start of an English word fall back to literal text instead of mangling
// it, while still letting a toggled-off tone (e.g. VNI "a11") leave the
// digit behind as plain text rather than erasing it outright.
type Driver struct {
	def   Definition
	style AccentStyle

	syllable *Syllable
	literal  []rune

	// lastLetter is the clean, lowercased previous content letter the
	// driver has seen - set by every literal keystroke and every attempted
	// ActionModifyLetter. Telex's PreviousLetterGate checks this to resolve
	// the ambiguity of reusing vowel letters as their own modification
	// triggers (so "o" right after "a" extends the vowel cluster in "chao"
	// instead of being mistaken for the "oo" -> "ô" trigger).
	lastLetter rune

	insertedHornU     bool
	insertedHornUChar rune

	// Cumulative tracks every tone/modification removal actually committed
	// across the driver's lifetime (including ones that leave a trailing
	// literal character behind, like a toggled-off tone), for collaborators
	// that want to know whether a word ever had a diacritic stripped
	// mid-composition. Rolled-back attempts never reach it.
	Cumulative TransformResult
}

// NewDriver returns a Driver for typing method def, rendering tone marks
// with the given AccentStyle.
func NewDriver(def Definition, style AccentStyle) *Driver {
	return &Driver{def: def, style: style, syllable: &Syllable{AccentStyle: style}}
}

// Reset clears the driver back to an empty syllable, as when a word
// boundary (space, punctuation, commit) is reached.
func (d *Driver) Reset() {
	d.syllable = &Syllable{AccentStyle: d.style}
	d.literal = nil
	d.lastLetter = 0
	d.insertedHornU = false
}

// View renders the syllable composed so far.
func (d *Driver) View() string {
	return d.syllable.String()
}

// Literal returns the raw keystrokes typed so far, case preserved.
func (d *Driver) Literal() string {
	return string(d.literal)
}

// IsEmpty reports whether no keystrokes have been typed since the last Reset.
func (d *Driver) IsEmpty() bool {
	return len(d.literal) == 0
}

// PushChar processes one keystroke and returns the syllable's new render
// plus the TransformResult delta this single keystroke caused (as opposed
// to Cumulative, which accumulates across the driver's lifetime).
func (d *Driver) PushChar(ch rune) (string, TransformResult) {
	lower := lowerVN(ch)
	actions, ok := d.def[lower]
	if !ok {
		d.pushLiteral(ch)
		return d.View(), TransformResult{}
	}

	fallback := []rune(d.syllable.String())
	fallback = append(fallback, ch)

	for _, action := range actions {
		if !d.gatePasses(action) {
			continue
		}

		performed, delta := d.execute(ch, action)

		if !performed {
			// The action's own mutation (if any) already landed on the
			// syllable; the keystroke itself still lands as literal text
			// on top of that, rather than being discarded.
			d.syllable.Push(ch)
			d.literal = append(d.literal, ch)
			d.insertedHornU = false
			d.lastLetter = lower
			d.Cumulative.merge(delta)
			return d.View(), delta
		}

		bypassValidation := action.Kind == ActionInsertHornU || action.Kind == ActionResetInsertedHornU
		if !bypassValidation && !IsValidSyllable(d.syllable) {
			d.syllable.Set(string(fallback))
			d.insertedHornU = false
			d.lastLetter = lower
			d.literal = append(d.literal, ch)
			return d.View(), TransformResult{}
		}

		if action.Kind == ActionModifyLetter {
			d.lastLetter = lower
		}
		d.Cumulative.merge(delta)
		d.literal = append(d.literal, ch)
		return d.View(), delta
	}

	// No Action's gate held for the current state: treat the key like an
	// unmapped one.
	d.pushLiteral(ch)
	return d.View(), TransformResult{}
}

// gatePasses reports whether action is even eligible to run against the
// driver's current state: its PreviousLetterGate (if any), plus the
// Action-kind-specific conditions that ActionInsertHornU and
// ActionResetInsertedHornU depend on instead.
func (d *Driver) gatePasses(action Action) bool {
	if action.PreviousLetterGate != nil && !action.PreviousLetterGate(d.lastLetter) {
		return false
	}
	switch action.Kind {
	case ActionInsertHornU:
		return d.syllable.Vowel == ""
	case ActionResetInsertedHornU:
		return d.insertedHornU
	default:
		return true
	}
}

// execute runs one Action against the driver's syllable, mutating it, and
// reports whether the resulting Transformation counts as "performed" per
// §4.H: Ignored and a toggled-off modification never count; a toggled-off
// tone counts only when the Action was an explicit ActionRemoveToneMark;
// everything else does.
func (d *Driver) execute(ch rune, action Action) (performed bool, delta TransformResult) {
	switch action.Kind {
	case ActionAddToneMark:
		t, res := AddTone(d.syllable, action.Tone)
		return performedFor(t, action.Kind), res

	case ActionRemoveToneMark:
		t, res := RemoveTone(d.syllable)
		return performedFor(t, action.Kind), res

	case ActionModifyLetter:
		t, res := ModifyLetter(d.syllable, action.Mod)
		return performedFor(t, action.Kind), res

	case ActionInsertHornU:
		trigger, base := rune('w'), rune('u')
		if ch == 'W' {
			trigger, base = 'W', 'U'
		}
		d.syllable.Push(base)
		ModifyLetter(d.syllable, ModHorn)
		d.insertedHornU = true
		d.insertedHornUChar = trigger
		return true, TransformResult{}

	case ActionResetInsertedHornU:
		d.syllable.ReplaceLastChar(ch)
		d.insertedHornU = false
		return true, TransformResult{}

	default:
		return false, TransformResult{}
	}
}

// performedFor classifies a Transformation as "performed" per §4.H.
func performedFor(t Transformation, kind ActionKind) bool {
	switch t {
	case Ignored, LetterModificationRemoved:
		return false
	case ToneMarkRemoved:
		return kind == ActionRemoveToneMark
	default: // ToneMarkAdded, LetterModificationAdded
		return true
	}
}

// UndoInsertedHornU reverts a bare "w"/"W" -> "ư"/"Ư" shorthand insertion
// back to the literal trigger character it stood for, and removes it from
// the raw keystroke log. Collaborators that support backspace call this
// when the character being deleted is that auto-inserted vowel, so the undo
// restores the key the user actually pressed instead of silently erasing it.
func (d *Driver) UndoInsertedHornU() bool {
	if !d.insertedHornU {
		return false
	}
	d.syllable.ReplaceLastChar(d.insertedHornUChar)
	d.insertedHornU = false
	if len(d.literal) > 0 {
		d.literal = d.literal[:len(d.literal)-1]
	}
	return true
}

func (d *Driver) pushLiteral(ch rune) {
	d.syllable.Push(ch)
	d.literal = append(d.literal, ch)
	d.insertedHornU = false
	d.lastLetter = lowerVN(ch)
}
