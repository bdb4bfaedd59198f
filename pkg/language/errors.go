package language

import (
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrDefect matches every *Defect.
	ErrDefect = errors.New("internal defect")
)

// SyntaxError is a user-facing parse failure reported by the grammar.
// Message is the grammar's message, unmodified. Line and Column are 0 when the
// grammar gave no position.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
	Source  string

	err error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.sourceName(), e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.sourceName(), e.Message)
}

func (e *SyntaxError) sourceName() string {
	if e.Source == "" {
		return "input"
	}
	return e.Source
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func (e *SyntaxError) Unwrap() error { return e.err }

func newSyntaxError(source string, err error) *SyntaxError {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		return &SyntaxError{Message: err.Error(), Source: source, err: err}
	}
	syntaxErr := &SyntaxError{Message: gqlErr.Message, Source: source, err: err}
	if len(gqlErr.Locations) > 0 {
		syntaxErr.Line = gqlErr.Locations[0].Line
		syntaxErr.Column = gqlErr.Locations[0].Column
	}
	return syntaxErr
}

// Defect is an internal contract violation: the builder was handed a tree it
// cannot represent, such as an integer literal outside the int64 range. Build
// panics with a *Defect; Parse recovers it into an error.
type Defect struct {
	Reason string
}

func (d *Defect) Error() string { return "defect: " + d.Reason }

func (d *Defect) Is(target error) bool { return target == ErrDefect }

func defectf(format string, args ...any) *Defect {
	return &Defect{Reason: fmt.Sprintf(format, args...)}
}
