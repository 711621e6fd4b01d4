package shunt

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// Precedence is the binding strength of an operator. Higher values bind more
// tightly.
type Precedence int8

const (
	PrecUnknown Precedence = iota
	PrecAdditive
	PrecMultiplicative
	PrecExponentiation
	PrecUnary
)

func (p Precedence) String() string {
	switch p {
	case PrecAdditive:
		return "Additive"
	case PrecMultiplicative:
		return "Multiplicative"
	case PrecExponentiation:
		return "Exponentiation"
	case PrecUnary:
		return "Unary"
	default:
		return "Precedence(" + strconv.Itoa(int(p)) + ")"
	}
}

// Associativity describes how a chain of operators with equal precedence
// groups.
type Associativity int8

const (
	AssocUnknown Associativity = iota
	// AssocLeft groups left to right: a-b-c is (a-b)-c.
	AssocLeft
	// AssocRight groups right to left: a^b^c is a^(b^c).
	AssocRight
	// AssocNone is for prefix operators, which never group with an operand
	// on their left.
	AssocNone
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "Left-Associative"
	case AssocRight:
		return "Right-Associative"
	case AssocNone:
		return "Not Associative"
	default:
		return "Associativity(" + strconv.Itoa(int(a)) + ")"
	}
}

// associativity is decided by precedence level, so that every operator in a
// level groups the same way.
var associativity = [...]Associativity{
	PrecAdditive:       AssocLeft,
	PrecMultiplicative: AssocLeft,
	PrecExponentiation: AssocRight,
	PrecUnary:          AssocNone,
}

func (p Precedence) associativity() Associativity {
	if p <= PrecUnknown || int(p) >= len(associativity) {
		return AssocUnknown
	}
	return associativity[p]
}

// OperatorKind identifies an operator.
type OperatorKind int8

const (
	OpNone OperatorKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpRaiseTo
	OpModulo
	OpUnaryMinus
)

// FunctionKind identifies a function.
type FunctionKind int8

const (
	FuncNone FunctionKind = iota
	FuncSine
	FuncCosine
	FuncTangent
	FuncMaximum
	FuncMinimum
)

// ConstantKind identifies a named constant.
type ConstantKind int8

const (
	ConstNone ConstantKind = iota
	ConstPi
	ConstE
)

type opinfo struct {
	symbol string
	name   string
	prec   Precedence
	arity  int
}

type fninfo struct {
	symbol string
	name   string
	arity  int
}

type constinfo struct {
	symbol string
	name   string
	// value sets z to the constant to the precision of z.
	value func(z *big.Float) *big.Float
}

// UnaryMinusSymbol is the text of the negation operator. The segmenter
// rewrites every minus sign that does not follow an operand to this symbol.
const UnaryMinusSymbol = "~"

var operators = [...]opinfo{
	OpAdd:        {"+", "Add", PrecAdditive, 2},
	OpSubtract:   {"-", "Subtract", PrecAdditive, 2},
	OpMultiply:   {"*", "Multiply", PrecMultiplicative, 2},
	OpDivide:     {"/", "Divide", PrecMultiplicative, 2},
	OpRaiseTo:    {"^", "Raise To", PrecExponentiation, 2},
	OpModulo:     {"%", "Modulo", PrecMultiplicative, 2},
	OpUnaryMinus: {UnaryMinusSymbol, "Unary Minus", PrecUnary, 1},
}

var functions = [...]fninfo{
	FuncSine:    {"sin", "Sine", 1},
	FuncCosine:  {"cos", "Cosine", 1},
	FuncTangent: {"tan", "Tangent", 1},
	FuncMaximum: {"max", "Maximum", 2},
	FuncMinimum: {"min", "Minimum", 2},
}

var constants = [...]constinfo{
	ConstPi: {"pi", "Pi", bigfloat.Pi},
	ConstE: {"e", "e", func(z *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(z.Prec()).SetInt64(1)
		return bigfloat.Exp(z, &one)
	}},
}

const (
	leftParen    = "("
	rightParen   = ")"
	separatorSym = ","
)

// info gets the table entry for an operator. The result is false if the
// entry is missing or incomplete.
func (k OperatorKind) info() (opinfo, bool) {
	if k <= OpNone || int(k) >= len(operators) {
		return opinfo{}, false
	}
	m := operators[k]
	if m.symbol == "" || m.arity <= 0 || m.prec.associativity() == AssocUnknown {
		return opinfo{}, false
	}
	return m, true
}

// Symbol returns the text of the operator, or the empty string if k is not
// a valid operator.
func (k OperatorKind) Symbol() string {
	m, _ := k.info()
	return m.symbol
}

func (k OperatorKind) String() string {
	if m, ok := k.info(); ok {
		return m.name
	}
	return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
}

func (k FunctionKind) info() (fninfo, bool) {
	if k <= FuncNone || int(k) >= len(functions) {
		return fninfo{}, false
	}
	m := functions[k]
	if m.symbol == "" || m.arity <= 0 {
		return fninfo{}, false
	}
	return m, true
}

// Symbol returns the name used to call the function, or the empty string if
// k is not a valid function.
func (k FunctionKind) Symbol() string {
	m, _ := k.info()
	return m.symbol
}

func (k FunctionKind) String() string {
	if m, ok := k.info(); ok {
		return m.name
	}
	return "FunctionKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ConstantKind) info() (constinfo, bool) {
	if k <= ConstNone || int(k) >= len(constants) {
		return constinfo{}, false
	}
	m := constants[k]
	if m.symbol == "" || m.value == nil {
		return constinfo{}, false
	}
	return m, true
}

// Symbol returns the name of the constant, or the empty string if k is not a
// valid constant.
func (k ConstantKind) Symbol() string {
	m, _ := k.info()
	return m.symbol
}

func (k ConstantKind) String() string {
	if m, ok := k.info(); ok {
		return m.name
	}
	return "ConstantKind(" + strconv.Itoa(int(k)) + ")"
}

// Value computes the constant rounded to places digits after the decimal
// point.
func (k ConstantKind) Value(places int32) (decimal.Decimal, error) {
	m, ok := k.info()
	if !ok {
		return decimal.Decimal{}, &ConfigError{What: "constant", Kind: int(k)}
	}
	z := new(big.Float).SetPrec(bitsFor(places))
	m.value(z)
	return decimal.NewFromString(z.Text('f', int(places)))
}

// bitsFor gives a binary precision sufficient to round correctly to places
// decimal digits.
func bitsFor(places int32) uint {
	// log2(10) < 3.33
	return uint(places)*333/100 + 64
}

// lookupOperator finds the operator with the given symbol.
func lookupOperator(sym string) (OperatorKind, bool) {
	for k := range operators {
		if k := OperatorKind(k); k != OpNone && operators[k].symbol == sym {
			return k, true
		}
	}
	return OpNone, false
}

// lookupFunction finds the function with the given name.
func lookupFunction(sym string) (FunctionKind, bool) {
	for k := range functions {
		if k := FunctionKind(k); k != FuncNone && functions[k].symbol == sym {
			return k, true
		}
	}
	return FuncNone, false
}

// lookupConstant finds the constant with the given name.
func lookupConstant(sym string) (ConstantKind, bool) {
	for k := range constants {
		if k := ConstantKind(k); k != ConstNone && constants[k].symbol == sym {
			return k, true
		}
	}
	return ConstNone, false
}

// ConfigError indicates a kind with no complete entry in the operator,
// function, or constant tables. It means a programming error rather than bad
// input.
type ConfigError struct {
	// What is "operator", "function", or "constant".
	What string
	// Kind is the numeric kind that was looked up.
	Kind int
}

func (err *ConfigError) Error() string {
	return "no complete definition for " + err.What + " kind " + strconv.Itoa(err.Kind)
}
