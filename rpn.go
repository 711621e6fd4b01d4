package shunt

// pending is an entry on the operator stack during conversion.
type pending struct {
	tok Token
	// call is whether a left parenthesis opens a function's argument list.
	call bool
	// seps counts the separators seen directly inside a left parenthesis.
	seps int
}

// Postfix converts the expression to postfix order using the shunting-yard
// algorithm. q is not modified.
//
// Besides mismatched parentheses, Postfix rejects separators outside
// function argument lists and calls whose argument count differs from the
// function's arity. Other malformations, like a missing operand, are left for
// Postfix.Eval to find.
func (q Infix) Postfix() (Postfix, error) {
	out := make(Postfix, 0, len(q))
	var stack []pending
	// prev is the previous token, for distinguishing f() from f(x).
	var prev Token
	for _, tok := range q {
		switch tok.kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenFunction:
			stack = append(stack, pending{tok: tok})
		case TokenSeparator:
			// Flush the completed argument, re-checking the top each time, up
			// to but not including the argument list's parenthesis.
			for len(stack) > 0 && !stack[len(stack)-1].tok.isLeft() {
				out = append(out, stack[len(stack)-1].tok)
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 || !stack[len(stack)-1].call {
				return nil, &SeparatorError{Col: tok.pos}
			}
			stack[len(stack)-1].seps++
		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1].tok
				if top.kind != TokenOperator || !yields(tok, top) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, pending{tok: tok})
		case TokenParen:
			if tok.side == Left {
				call := len(stack) > 0 && stack[len(stack)-1].tok.kind == TokenFunction
				stack = append(stack, pending{tok: tok, call: call})
				break
			}
			for len(stack) > 0 && !stack[len(stack)-1].tok.isLeft() {
				out = append(out, stack[len(stack)-1].tok)
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tok.pos, Right: rightParen}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].tok.kind == TokenFunction {
				fn := stack[len(stack)-1].tok
				stack = stack[:len(stack)-1]
				n := open.seps + 1
				if prev.isLeft() {
					n = 0
				}
				if n != fn.arity {
					return nil, &CallError{Col: tok.pos, Func: fn.fn.Symbol(), Len: n}
				}
				out = append(out, fn)
			}
		default:
			panic("shunt: invalid token " + tok.GoString() + " in infix")
		}
		prev = tok
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1].tok
		stack = stack[:len(stack)-1]
		if top.kind == TokenParen {
			return nil, &BracketError{Col: top.pos, Left: leftParen}
		}
		out = append(out, top)
	}
	return out, nil
}

// yields reports whether the operator top, already on the stack, must be
// output before op is pushed. Left-associative operators yield to equal
// precedence so that they evaluate left to right; others yield only to
// strictly higher precedence.
func yields(op, top Token) bool {
	if op.assoc == AssocLeft && op.prec <= top.prec {
		return true
	}
	return op.prec < top.prec
}

// ToPostfix parses an expression and returns its postfix form with tokens
// joined by single spaces.
func ToPostfix(expr string, opts ...Option) (string, error) {
	q, err := Parse(expr, opts...)
	if err != nil {
		return "", err
	}
	p, err := q.Postfix()
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
