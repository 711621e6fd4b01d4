package shunt

import (
	"github.com/shopspring/decimal"
)

// classifier tries to make a token from a segment's text. The bool result is
// false if the text is not the classifier's kind of token.
type classifier func(text string, s settings) (Token, bool, error)

// classifiers are tried in order; the first to match wins. Numbers come
// first so that constant names are never taken for anything else.
var classifiers = [...]classifier{
	classifyNumber,
	classifyOperator,
	classifyParen,
	classifyFunction,
	classifySeparator,
}

// Classify makes a token from a segment. The error is a *TokenError if the
// segment is not any kind of token.
func Classify(seg Segment, opts ...Option) (Token, error) {
	return classify(seg, configure(opts))
}

func classify(seg Segment, s settings) (Token, error) {
	for _, c := range classifiers {
		tok, ok, err := c(seg.Text, s)
		if err != nil {
			return Token{}, err
		}
		if ok {
			return tok.at(seg.Col), nil
		}
	}
	return Token{}, &TokenError{Col: seg.Col, Text: seg.Text}
}

func classifyNumber(text string, s settings) (Token, bool, error) {
	if isNumeral(text) {
		v, err := decimal.NewFromString(text)
		if err != nil {
			// isNumeral accepts only what NewFromString does.
			panic("shunt: invalid numeral " + text + ": " + err.Error())
		}
		return NumberToken(v), true, nil
	}
	k, ok := lookupConstant(text)
	if !ok {
		return Token{}, false, nil
	}
	v, err := k.Value(s.places)
	if err != nil {
		return Token{}, false, err
	}
	return NumberToken(v), true, nil
}

func classifyOperator(text string, s settings) (Token, bool, error) {
	k, ok := lookupOperator(text)
	if !ok {
		return Token{}, false, nil
	}
	tok, err := OperatorToken(k)
	return tok, err == nil, err
}

func classifyParen(text string, s settings) (Token, bool, error) {
	switch text {
	case leftParen:
		return ParenToken(Left), true, nil
	case rightParen:
		return ParenToken(Right), true, nil
	default:
		return Token{}, false, nil
	}
}

func classifyFunction(text string, s settings) (Token, bool, error) {
	k, ok := lookupFunction(text)
	if !ok {
		return Token{}, false, nil
	}
	tok, err := FunctionToken(k)
	return tok, err == nil, err
}

func classifySeparator(text string, s settings) (Token, bool, error) {
	if text != separatorSym {
		return Token{}, false, nil
	}
	return SeparatorToken(), true, nil
}

// Parse segments and classifies an expression. Constants are resolved to the
// precision given by opts. The result is in the order written; use
// Infix.Postfix to reorder it for evaluation. Parse does not check that the
// expression is well-formed beyond every segment being a token.
func Parse(expr string, opts ...Option) (Infix, error) {
	s := configure(opts)
	segs := Segments(expr)
	q := make(Infix, 0, len(segs))
	for _, seg := range segs {
		tok, err := classify(seg, s)
		if err != nil {
			return nil, err
		}
		q = append(q, tok)
	}
	return q, nil
}

// Normalize parses an expression and returns its tokens joined by single
// spaces, with negation written as UnaryMinusSymbol and constants written as
// their values.
func Normalize(expr string, opts ...Option) (string, error) {
	q, err := Parse(expr, opts...)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}
