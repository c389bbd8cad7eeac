package tinyre

// Backend selects the engine that runs a compiled pattern.
type Backend string

const (
	// BackendBacktrack runs patterns on the built-in backtracking matcher.
	BackendBacktrack Backend = "backtrack"

	// BackendRE2 runs patterns on RE2 through the native package. Matching
	// is linear time; repeated groups report only their last iteration.
	BackendRE2 Backend = "re2"
)

// Config controls how a pattern is compiled and searched.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.Backend = tinyre.BackendRE2
//	re, err := tinyre.CompileWithConfig("(a*)*b", config)
type Config struct {
	// Backend selects the matching engine.
	// Default: BackendBacktrack
	Backend Backend

	// EnablePrefilter enables literal prefiltering in the Find* methods.
	// Search always matches at offset 0 and never uses it.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of prefix literals extracted for the
	// prefilter. Patterns that fan out further get no prefilter.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each prefix literal.
	// Default: 64
	MaxLiteralLen int

	// MaxClassSize is the largest character class expanded into literals.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Backend:         BackendBacktrack,
		EnablePrefilter: true,
		MaxLiterals:     64,
		MaxLiteralLen:   64,
		MaxClassSize:    10,
	}
}

// Validate reports the first out-of-range field as a *ConfigError.
//
// Valid ranges, checked only when EnablePrefilter is set:
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 256
//   - MaxClassSize: 1 to 256
func (c Config) Validate() error {
	switch c.Backend {
	case BackendBacktrack, BackendRE2:
	default:
		return &ConfigError{
			Field:   "Backend",
			Message: "must be " + string(BackendBacktrack) + " or " + string(BackendRE2),
		}
	}

	if !c.EnablePrefilter {
		return nil
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
	}
	if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 256 {
		return &ConfigError{Field: "MaxLiteralLen", Message: "must be between 1 and 256"}
	}
	if c.MaxClassSize < 1 || c.MaxClassSize > 256 {
		return &ConfigError{Field: "MaxClassSize", Message: "must be between 1 and 256"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
