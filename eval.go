package shunt

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Eval evaluates a postfix expression using an operand stack. Numbers are
// pushed; each operator or function pops its arguments, first argument
// deepest, and pushes its result. Exactly one value must remain at the end.
//
// Options affect the precision of inexact operations. q is not modified.
func (q Postfix) Eval(opts ...Option) (decimal.Decimal, error) {
	s := configure(opts)
	stack := make([]decimal.Decimal, 0, len(q))
	for _, tok := range q {
		switch tok.kind {
		case TokenNumber:
			stack = append(stack, tok.num)
		case TokenOperator, TokenFunction:
			n := tok.arity
			if len(stack) < n {
				return decimal.Decimal{}, &ArityError{Col: tok.pos, Name: tok.String(), Want: n, Have: len(stack)}
			}
			// The top n values are already in argument order.
			args := stack[len(stack)-n:]
			r, err := tok.apply(args, s)
			if err != nil {
				return decimal.Decimal{}, err
			}
			stack = append(stack[:len(stack)-n], r)
		case TokenNone, TokenParen, TokenSeparator:
			panic("shunt: " + tok.GoString() + " in postfix")
		default:
			panic("shunt: invalid token " + tok.GoString() + " in postfix")
		}
	}
	if len(stack) != 1 {
		return decimal.Decimal{}, &ResultError{Len: len(stack)}
	}
	return stack[0], nil
}

// Evaluate is a shortcut to parse, convert, and evaluate an expression.
func Evaluate(expr string, opts ...Option) (decimal.Decimal, error) {
	q, err := Parse(expr, opts...)
	if err != nil {
		return decimal.Decimal{}, err
	}
	p, err := q.Postfix()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.Eval(opts...)
}

// ArityError is an error indicating an operator or function that has fewer
// operands available than it takes, e.g. the second + in "2 + + 3". It
// implements InputError.
type ArityError struct {
	// Col is the position of the operator or function.
	Col int
	// Name is the operator symbol or function name.
	Name string
	// Want is the operator or function's arity.
	Want int
	// Have is the number of operands that were available.
	Have int
}

func (err *ArityError) Error() string {
	return errpos(err.Col, err.Name+" takes "+strconv.Itoa(err.Want)+" operands but has "+strconv.Itoa(err.Have))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// ResultError is an error indicating that evaluation did not end with
// exactly one value, e.g. for an empty expression or "1 2".
type ResultError struct {
	// Len is the number of values left on the stack.
	Len int
}

func (err *ResultError) Error() string {
	if err.Len == 0 {
		return "malformed expression: no value"
	}
	return "malformed expression: " + strconv.Itoa(err.Len) + " values without operators between them"
}
