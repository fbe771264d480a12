package engine

// KeysymToRune converts an X11 keysym to the rune it represents, or 0 if
// the keysym has no simple rune equivalent (function keys, arrows, etc).
func KeysymToRune(keysym uint32) rune {
	// ASCII printable characters (0x20 - 0x7E).
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	// Latin-1 supplement (0xA0 - 0xFF).
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	// X11's Unicode keysym range (0x01000000 + codepoint).
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}
