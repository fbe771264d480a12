package engine

// Config holds the settings a frontend collaborator exposes to a user:
// which typing method to use and which tone-placement convention to
// render with. Unlike the teacher's EngineConfig, validation and
// double-key revert are not optional here - they are load-bearing parts
// of the fallback algorithm in Driver.PushChar, not toggles.
type Config struct {
	// MethodName selects the typing method ("Telex" or "VNI").
	MethodName string

	// AccentStyle controls where the tone mark lands on open diphthongs
	// like "hoà"/"hóa".
	AccentStyle AccentStyle
}

// DefaultConfig returns Telex with the New accent style, the convention
// most modern Vietnamese input methods ship with.
func DefaultConfig() *Config {
	return &Config{
		MethodName:  "Telex",
		AccentStyle: AccentNew,
	}
}

// Definition resolves the configured method name to its Definition,
// falling back to Telex for an unrecognized name.
func (c *Config) Definition() Definition {
	if def, ok := DefinitionByName(c.MethodName); ok {
		return def
	}
	return Telex
}

// ConfiguredBuffer is an IncrementalBuffer bound to a Config, letting a
// collaborator swap typing method or accent style without losing the
// buffer/backspace machinery.
type ConfiguredBuffer struct {
	*IncrementalBuffer
	config *Config
}

// NewConfiguredBuffer creates a buffer from config, or DefaultConfig if
// config is nil.
func NewConfiguredBuffer(config *Config) *ConfiguredBuffer {
	if config == nil {
		config = DefaultConfig()
	}
	return &ConfiguredBuffer{
		IncrementalBuffer: NewIncrementalBuffer(config.Definition(), config.AccentStyle),
		config:            config,
	}
}

// SetConfig rebuilds the buffer's driver to match a new configuration,
// discarding any in-progress word.
func (b *ConfiguredBuffer) SetConfig(config *Config) {
	b.config = config
	b.IncrementalBuffer = NewIncrementalBuffer(config.Definition(), config.AccentStyle)
}

// GetConfig returns the buffer's current configuration.
func (b *ConfiguredBuffer) GetConfig() *Config {
	return b.config
}
