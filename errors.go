package jsonflow

import (
	stderrors "errors"
	"fmt"

	"github.com/juju/errors"
)

// MalformedError is the single externally visible error kind raised by
// Consume: any byte that cannot begin a legal completion of the
// document observed so far. Offset is the byte position in the
// document where the violation was detected; Token, if non-empty, is
// the offending token's text.
type MalformedError struct {
	Reason string
	Offset int
	Token  string
}

// Error formats a human-readable description, naming the byte offset
// and, when available, the offending token.
func (e *MalformedError) Error() string {
	s := fmt.Sprintf("malformed json at byte %d", e.Offset)
	if e.Token != "" {
		s += fmt.Sprintf(" near %q", e.Token)
	}
	return s + ": " + e.Reason
}

// newMalformed builds a *MalformedError wrapped in a juju/errors trace.
// Callers thread the traced error straight back through Consume;
// errors.Trace lets the stack of call sites show up in %+v, and
// IsMalformed still finds the *MalformedError underneath through
// errors.Cause.
func newMalformed(offset int, tok string, format string, args ...any) error {
	e := &MalformedError{
		Reason: fmt.Sprintf(format, args...),
		Offset: offset,
		Token:  tok,
	}
	return errors.Trace(e)
}

// IsMalformed reports whether err is (or wraps) a *MalformedError,
// looking through both a juju/errors trace (via errors.Cause) and a
// standard library Unwrap chain.
func IsMalformed(err error) bool {
	var m *MalformedError
	if stderrors.As(err, &m) {
		return true
	}
	_, ok := errors.Cause(err).(*MalformedError)
	return ok
}
