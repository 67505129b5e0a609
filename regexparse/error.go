package regexparse

import "fmt"

// SyntaxError reports a malformed regex source. Parsing never attempts
// recovery: the first unrecoverable syntactic inconsistency is fatal, and
// no partial NFA is ever returned alongside it.
type SyntaxError struct {
	Source string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid regex %q: %s", e.Source, e.Reason)
}
