package linex

// Config controls regex compilation limits: a plain struct with a
// DefaultConfig constructor, no file- or environment-based loading.
type Config struct {
	// MaxDFAStates caps the number of subset-construction states a
	// compiled regex may occupy before compilation fails with
	// ErrPatternTooComplex.
	MaxDFAStates int
}

// DefaultConfig returns the configuration CompileRegex uses implicitly.
func DefaultConfig() Config {
	return Config{MaxDFAStates: 10000}
}
