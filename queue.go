package shunt

import "strings"

// Infix is a sequence of tokens in the order written. Methods on Infix never
// modify it, so the same Infix can be converted or displayed any number of
// times.
type Infix []Token

// String returns the tokens joined by single spaces.
func (q Infix) String() string {
	return join(q)
}

// Postfix is a sequence of tokens in postfix order: every operator and
// function follows its operands. It contains only numbers, operators, and
// functions. Methods on Postfix never modify it.
type Postfix []Token

// String returns the tokens joined by single spaces.
func (q Postfix) String() string {
	return join(q)
}

func join(q []Token) string {
	var b strings.Builder
	for i, tok := range q {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
