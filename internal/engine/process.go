package engine

// CompositionEngine adapts a ConfiguredBuffer to the keysym-based KeyEvent
// API a D-Bus (or other window-system) frontend collaborator speaks:
// ProcessKey consumes one keyboard event and reports whether it was
// handled, what (if anything) should be committed to the application, and
// the current preedit string.
type CompositionEngine struct {
	buffer  *ConfiguredBuffer
	enabled bool
}

// NewCompositionEngine creates an engine using DefaultConfig.
func NewCompositionEngine() *CompositionEngine {
	return &CompositionEngine{
		buffer:  NewConfiguredBuffer(DefaultConfig()),
		enabled: true,
	}
}

// SetInputMethod switches the underlying typing method without losing the
// accent style currently configured.
func (e *CompositionEngine) SetInputMethod(name string) {
	cfg := e.buffer.GetConfig()
	e.buffer.SetConfig(&Config{MethodName: name, AccentStyle: cfg.AccentStyle})
}

// SetEnabled enables or disables the engine; disabling also resets any
// in-progress composition.
func (e *CompositionEngine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.Reset()
	}
}

// IsEnabled reports whether the engine is currently accepting key events.
func (e *CompositionEngine) IsEnabled() bool {
	return e.enabled
}

// Reset clears any in-progress composition.
func (e *CompositionEngine) Reset() {
	e.buffer.Clear()
}

// GetPreedit returns the current preedit string.
func (e *CompositionEngine) GetPreedit() string {
	return e.buffer.View()
}

// ProcessKey handles one key event and returns the collaborator-facing
// result.
func (e *CompositionEngine) ProcessKey(event KeyEvent) ProcessResult {
	if !e.enabled {
		return ProcessResult{}
	}

	if result, handled := e.handleSpecialKey(event); handled {
		return result
	}

	if event.Modifiers&(ModControl|ModMod1) != 0 {
		return e.commitAndPassThrough()
	}

	char := KeysymToRune(event.KeySym)
	if char == 0 {
		return ProcessResult{}
	}

	e.buffer.Push(char)
	return ProcessResult{Handled: true, Preedit: e.buffer.View()}
}

// commitAndPassThrough commits any in-progress word without consuming the
// triggering key, used for modifier combinations the engine never handles.
func (e *CompositionEngine) commitAndPassThrough() ProcessResult {
	if e.buffer.IsEmpty() {
		return ProcessResult{}
	}
	preedit := e.buffer.View()
	e.Reset()
	return ProcessResult{Handled: false, CommitText: preedit}
}

// handleSpecialKey handles keys that are not themselves composed text:
// Backspace, Space, Enter, Escape, Tab, Delete.
func (e *CompositionEngine) handleSpecialKey(event KeyEvent) (ProcessResult, bool) {
	switch event.KeySym {
	case KeyBackspace:
		if e.buffer.IsEmpty() {
			return ProcessResult{}, false
		}
		e.buffer.Backspace()
		return ProcessResult{Handled: true, Preedit: e.buffer.View()}, true

	case KeySpace:
		preedit := e.buffer.View()
		e.Reset()
		return ProcessResult{Handled: true, CommitText: preedit + " "}, true

	case KeyReturn:
		if e.buffer.IsEmpty() {
			return ProcessResult{}, false
		}
		preedit := e.buffer.View()
		e.Reset()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyEscape:
		e.Reset()
		return ProcessResult{Handled: true}, true

	case KeyTab:
		if e.buffer.IsEmpty() {
			return ProcessResult{}, false
		}
		preedit := e.buffer.View()
		e.Reset()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyDelete:
		if e.buffer.IsEmpty() {
			return ProcessResult{}, false
		}
		preedit := e.buffer.View()
		e.Reset()
		return ProcessResult{Handled: false, CommitText: preedit}, true

	default:
		return ProcessResult{}, false
	}
}
