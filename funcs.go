package shunt

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// maxExponent bounds the magnitude of integer exponents, since integer
// powers are computed exactly.
const maxExponent = 1 << 20

// apply computes the result of an operator or function token on its
// arguments. len(args) is the token's arity.
func (t Token) apply(args []decimal.Decimal, s settings) (decimal.Decimal, error) {
	switch t.kind {
	case TokenOperator:
		return operate(t.op, args, s)
	case TokenFunction:
		return call(t.fn, args)
	default:
		panic("shunt: apply on " + t.GoString())
	}
}

func operate(k OperatorKind, args []decimal.Decimal, s settings) (decimal.Decimal, error) {
	switch k {
	case OpAdd:
		return args[0].Add(args[1]), nil
	case OpSubtract:
		return args[0].Sub(args[1]), nil
	case OpMultiply:
		return args[0].Mul(args[1]), nil
	case OpDivide:
		if args[1].IsZero() {
			return decimal.Decimal{}, &DomainError{X: args[1], Arg: 2, Func: k.Symbol()}
		}
		return args[0].DivRound(args[1], s.places), nil
	case OpModulo:
		// Mod truncates, so the result has the sign of the dividend.
		if args[1].IsZero() {
			return decimal.Decimal{}, &DomainError{X: args[1], Arg: 2, Func: k.Symbol()}
		}
		return args[0].Mod(args[1]), nil
	case OpRaiseTo:
		return pow(args[0], args[1], s.places)
	case OpUnaryMinus:
		return args[0].Neg(), nil
	default:
		panic("shunt: invalid operator " + k.String())
	}
}

func call(k FunctionKind, args []decimal.Decimal) (decimal.Decimal, error) {
	switch k {
	case FuncSine:
		return trig(math.Sin, k.Symbol(), args[0])
	case FuncCosine:
		return trig(math.Cos, k.Symbol(), args[0])
	case FuncTangent:
		return trig(math.Tan, k.Symbol(), args[0])
	case FuncMaximum:
		if args[0].Cmp(args[1]) >= 0 {
			return args[0], nil
		}
		return args[1], nil
	case FuncMinimum:
		if args[0].Cmp(args[1]) <= 0 {
			return args[0], nil
		}
		return args[1], nil
	default:
		panic("shunt: invalid function " + k.String())
	}
}

// trig evaluates a float64 function and converts the result back to a
// decimal. The result is only as precise as a float64.
func trig(f func(float64) float64, name string, x decimal.Decimal) (decimal.Decimal, error) {
	r := f(x.InexactFloat64())
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Decimal{}, &DomainError{X: x, Arg: 1, Func: name}
	}
	return decimal.NewFromFloat(r), nil
}

// pow computes x^y. Integer powers are exact, except that negative powers
// are rounded to places. Fractional powers are computed with bigfloat and
// require a non-negative base.
func pow(x, y decimal.Decimal, places int32) (decimal.Decimal, error) {
	if y.IsInteger() {
		switch {
		case x.IsZero() && y.Sign() < 0:
			return decimal.Decimal{}, &DomainError{X: x, Arg: 1, Func: "^"}
		case y.IsZero():
			return one, nil
		case x.IsZero(), x.Equal(one):
			return x, nil
		case y.Abs().GreaterThan(decimal.NewFromInt(maxExponent)):
			return decimal.Decimal{}, &DomainError{X: y, Arg: 2, Func: "^"}
		}
		n := y.IntPart()
		if n < 0 {
			return one.DivRound(ipow(x, -n), places), nil
		}
		return ipow(x, n), nil
	}
	switch x.Sign() {
	case -1:
		// No real result, e.g. (-1)^0.5.
		return decimal.Decimal{}, &DomainError{X: x, Arg: 1, Func: "^"}
	case 0:
		if y.Sign() < 0 {
			return decimal.Decimal{}, &DomainError{X: x, Arg: 1, Func: "^"}
		}
		return decimal.Zero, nil
	}
	prec := bitsFor(places)
	bx, err := toBig(x, prec)
	if err != nil {
		return decimal.Decimal{}, err
	}
	by, err := toBig(y, prec)
	if err != nil {
		return decimal.Decimal{}, err
	}
	r, err := bigpow(new(big.Float).SetPrec(prec), bx, by)
	if err != nil {
		return decimal.Decimal{}, &DomainError{X: y, Arg: 2, Func: "^"}
	}
	if r.IsInf() {
		return decimal.Decimal{}, &DomainError{X: y, Arg: 2, Func: "^"}
	}
	return decimal.NewFromString(r.Text('f', int(places)))
}

var one = decimal.NewFromInt(1)

// ipow computes x^n exactly by squaring. n must be non-negative.
func ipow(x decimal.Decimal, n int64) decimal.Decimal {
	r := one
	for n > 0 {
		if n&1 != 0 {
			r = r.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return r
}

// bigpow calls bigfloat.Pow, converting its panics on domain errors into
// errors.
func bigpow(z, x, y *big.Float) (r *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok || !errors.As(e, new(big.ErrNaN)) {
			panic(p)
		}
		r, err = nil, e
	}()
	return bigfloat.Pow(z, x, y), nil
}

// toBig converts a decimal to a big.Float with the given precision.
func toBig(x decimal.Decimal, prec uint) (*big.Float, error) {
	f, _, err := big.ParseFloat(x.String(), 10, prec, big.ToNearestEven)
	return f, err
}

// DomainError is an error returned when an operator or function is applied
// to arguments outside its domain, e.g. division by zero. It unwraps to
// big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X decimal.Decimal
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is the operator symbol or function name.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}
