package linex

import (
	"errors"

	"github.com/coregx/linex/dfa"
	"github.com/coregx/linex/regexparse"
)

// Regex is a compiled regular expression: a shared-ownership handle to a
// compiled DFA plus the original source string. It never mutates after
// construction and is safe for concurrent use — stepping through the
// DFA's state rows only reads them.
type Regex struct {
	d      *dfa.DFA
	source string
}

// CompileRegex parses and compiles source against the restricted regex
// grammar, using [DefaultConfig]'s state cap. It returns *CompileError
// (wrapping [ErrInvalidPattern] or [ErrPatternTooComplex]) if source is
// malformed or too complex.
func CompileRegex(source string) (*Regex, error) {
	return CompileRegexWithConfig(source, DefaultConfig())
}

// CompileRegexWithConfig is [CompileRegex] with an explicit [Config].
func CompileRegexWithConfig(source string, cfg Config) (*Regex, error) {
	prog, err := regexparse.Parse(source)
	if err != nil {
		return nil, &CompileError{Source: source, Err: errors.Join(ErrInvalidPattern, err)}
	}
	d, err := dfa.CompileWithLimit(&prog, cfg.MaxDFAStates)
	if err != nil {
		return nil, &CompileError{Source: source, Err: errors.Join(ErrPatternTooComplex, err)}
	}
	return &Regex{d: d, source: source}, nil
}

// MustCompileRegex compiles source and panics if it fails. Useful for
// patterns known to be valid at init time.
func MustCompileRegex(source string) *Regex {
	re, err := CompileRegex(source)
	if err != nil {
		panic("linex: CompileRegex(`" + source + "`): " + err.Error())
	}
	return re
}

// Matches reports whether the whole of text matches the regex, anchored
// at both ends.
func (r *Regex) Matches(text []byte) bool {
	return r.d.Matches(text)
}

// MatchesString is [Regex.Matches] over a string.
func (r *Regex) MatchesString(s string) bool {
	return r.Matches([]byte(s))
}

// Search returns the offset of the leftmost position in text from which
// the regex matches, or (0, false) if none exists.
func (r *Regex) Search(text []byte) (int, bool) {
	return r.d.Search(text)
}

// SearchString is [Regex.Search] over a string.
func (r *Regex) SearchString(s string) (int, bool) {
	return r.Search([]byte(s))
}

// StateCount reports the number of states in the compiled DFA: a
// diagnostic surface, not part of the matching contract.
func (r *Regex) StateCount() int {
	return r.d.StateCount()
}

// IsEmpty reports whether compilation never completed (no states at all).
func (r *Regex) IsEmpty() bool {
	return r.d.IsEmpty()
}

// String returns the original regex source.
func (r *Regex) String() string {
	return r.source
}
