package parser

import (
	"errors"
	"fmt"

	"power-gadget/internal/models"
)

// Structural errors. Every one of them aborts the parse.
var (
	ErrMissingQuote      = errors.New("expected opening quote")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrMissingSeparator  = errors.New("expected comma after closing quote")
	ErrSummaryItems      = errors.New("summary line must hold exactly one item")
	ErrSummarySeparator  = errors.New(`summary line has no " = " separator`)
	ErrSummaryValue      = errors.New("summary value is not a number")

	ErrColumnMismatch  = models.ErrColumnMismatch
	ErrDuplicateColumn = models.ErrDuplicateColumn
)

// ParseError reports where a log stopped being well-formed
type ParseError struct {
	Line  int         // 1-based line number
	State ParserState // state the line was processed in
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.State, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
