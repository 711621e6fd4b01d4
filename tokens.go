package shunt

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a literal or a resolved constant.
	TokenNumber
	// TokenOperator is a unary or binary operator.
	TokenOperator
	// TokenFunction is a function name.
	TokenFunction
	// TokenParen is a left or right parenthesis.
	TokenParen
	// TokenSeparator is the comma between function arguments.
	TokenSeparator
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenFunction:
		return "Function"
	case TokenParen:
		return "Paren"
	case TokenSeparator:
		return "Separator"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Side is the side of a parenthesis.
type Side int8

const (
	Left Side = iota
	Right
)

// Token is a single lexical element of an expression. Tokens are values; the
// attributes of operators and functions are bound from fixed tables when the
// token is created and cannot change afterward.
type Token struct {
	kind TokenKind
	// pos is the 1-based rune column of the token in its source, or 0 if the
	// token was not scanned from text.
	pos int

	num decimal.Decimal

	op    OperatorKind
	fn    FunctionKind
	prec  Precedence
	assoc Associativity
	arity int

	side Side
}

// NumberToken creates a number token.
func NumberToken(v decimal.Decimal) Token {
	return Token{kind: TokenNumber, num: v}
}

// OperatorToken creates an operator token with its precedence, associativity,
// and arity taken from the operator table. The error is a *ConfigError if the
// table has no complete entry for k.
func OperatorToken(k OperatorKind) (Token, error) {
	m, ok := k.info()
	if !ok {
		return Token{}, &ConfigError{What: "operator", Kind: int(k)}
	}
	tok := Token{
		kind:  TokenOperator,
		op:    k,
		prec:  m.prec,
		assoc: m.prec.associativity(),
		arity: m.arity,
	}
	return tok, nil
}

// FunctionToken creates a function token with its arity taken from the
// function table. The error is a *ConfigError if the table has no complete
// entry for k.
func FunctionToken(k FunctionKind) (Token, error) {
	m, ok := k.info()
	if !ok {
		return Token{}, &ConfigError{What: "function", Kind: int(k)}
	}
	return Token{kind: TokenFunction, fn: k, arity: m.arity}, nil
}

// ParenToken creates a parenthesis token.
func ParenToken(side Side) Token {
	return Token{kind: TokenParen, side: side}
}

// SeparatorToken creates an argument separator token.
func SeparatorToken() Token {
	return Token{kind: TokenSeparator}
}

// at returns a copy of the token positioned at col.
func (t Token) at(col int) Token {
	t.pos = col
	return t
}

// Kind returns the token's variant.
func (t Token) Kind() TokenKind {
	return t.kind
}

// Pos returns the 1-based rune column where the token was scanned, or 0 if
// the token did not come from text.
func (t Token) Pos() int {
	return t.pos
}

// Value returns the value of a number token.
func (t Token) Value() decimal.Decimal {
	return t.num
}

// Operator returns the kind of an operator token, or OpNone.
func (t Token) Operator() OperatorKind {
	return t.op
}

// Function returns the kind of a function token, or FuncNone.
func (t Token) Function() FunctionKind {
	return t.fn
}

// Precedence returns the precedence of an operator token.
func (t Token) Precedence() Precedence {
	return t.prec
}

// Associativity returns the associativity of an operator token.
func (t Token) Associativity() Associativity {
	return t.assoc
}

// Arity returns the number of operands an operator or function token
// consumes, or 0 for other tokens.
func (t Token) Arity() int {
	return t.arity
}

// Side returns the side of a parenthesis token.
func (t Token) Side() Side {
	return t.side
}

// isLeft is a shortcut to check for a left parenthesis.
func (t Token) isLeft() bool {
	return t.kind == TokenParen && t.side == Left
}

// String returns the token's text as it appears in normalized expressions.
// Numbers are written in full, including resolved constants.
func (t Token) String() string {
	switch t.kind {
	case TokenNone:
		return "<none>"
	case TokenNumber:
		return t.num.String()
	case TokenOperator:
		return t.op.Symbol()
	case TokenFunction:
		return t.fn.Symbol()
	case TokenParen:
		if t.side == Left {
			return leftParen
		}
		return rightParen
	case TokenSeparator:
		return separatorSym
	default:
		panic("shunt: invalid token kind " + t.kind.String())
	}
}

// GoString formats the token for debugging, including its kind and position.
func (t Token) GoString() string {
	return t.kind.String() + ":" + t.String() + "@" + strconv.Itoa(t.pos)
}
