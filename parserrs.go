package shunt

import "strconv"

// TokenError is an error indicating a segment of the input that is not any
// kind of token. It implements InputError.
type TokenError struct {
	// Col is the position of the segment.
	Col int
	// Text is the segment that was not understood.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unrecognized token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed parenthesis, or empty if the error is a close with
	// no open.
	Left string
	// Right is the unopened parenthesis, or empty if the error is an open
	// with no close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "mismatched parentheses: close "+err.Right+" with no open")
	}
	return errpos(err.Col, "mismatched parentheses: open "+err.Left+" with no close")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside the argument list of
// a function call. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator \",\" outside function arguments")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the parenthesis that closes the call.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input that can be traced to a single token implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*ArityError)(nil)
)
