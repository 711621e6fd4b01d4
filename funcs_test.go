package shunt

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestIpow(t *testing.T) {
	cases := []struct {
		x    string
		n    int64
		want string
	}{
		{"2", 0, "1"},
		{"2", 1, "2"},
		{"2", 10, "1024"},
		{"-3", 3, "-27"},
		{"-3", 4, "81"},
		{"1.5", 2, "2.25"},
		{"0.1", 5, "0.00001"},
		{"10", 30, "1000000000000000000000000000000"},
	}
	for _, c := range cases {
		got := ipow(dec(c.x), c.n)
		if !got.Equal(dec(c.want)) {
			t.Errorf("%s^%d: want %s, got %s", c.x, c.n, c.want, got)
		}
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		name string
		x, y string
		want string
	}{
		{"zero-zero", "0", "0", "1"},
		{"zero-pos", "0", "5", "0"},
		{"one-neg", "1", "-5", "1"},
		{"neg-base-odd", "-2", "3", "-8"},
		{"neg-base-even", "-2", "2", "4"},
		{"recip", "2", "-1", "0.5"},
		{"recip-square", "2", "-2", "0.25"},
		{"third", "3", "-1", "0.3333333333333333333333333333"},
		{"frac-base", "0.5", "3", "0.125"},
		{"integral-exp", "3", "2.0", "9"},
		{"zero-frac", "0", "0.5", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := pow(dec(c.x), dec(c.y), DefaultPrec)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(dec(c.want)) {
				t.Errorf("%s^%s: want %s, got %s", c.x, c.y, c.want, got)
			}
		})
	}
}

func TestPowFractional(t *testing.T) {
	cases := []struct {
		x, y string
		want string
	}{
		{"4", "0.5", "2"},
		{"2", "0.5", "1.4142135623730950488016887242"},
		{"27", "0.3333333333333333333333333333", "3"},
		{"10", "-0.5", "0.3162277660168379331998893544"},
	}
	tol := dec("1e-20")
	for _, c := range cases {
		got, err := pow(dec(c.x), dec(c.y), DefaultPrec)
		if err != nil {
			t.Errorf("%s^%s: %v", c.x, c.y, err)
			continue
		}
		if got.Sub(dec(c.want)).Abs().GreaterThan(tol) {
			t.Errorf("%s^%s: want about %s, got %s", c.x, c.y, c.want, got)
		}
	}
}

func TestPowDomain(t *testing.T) {
	cases := []struct {
		name string
		x, y string
		arg  int
	}{
		{"zero-neg", "0", "-1", 1},
		{"zero-neg-frac", "0", "-0.5", 1},
		{"neg-frac", "-8", "0.5", 1},
		{"huge-exp", "2", "1048577", 2},
		{"huge-neg-exp", "2", "-1048577", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := pow(dec(c.x), dec(c.y), DefaultPrec)
			var derr *DomainError
			if !errors.As(err, &derr) {
				t.Fatalf("want DomainError, got %v", err)
			}
			if derr.Arg != c.arg || derr.Func != "^" {
				t.Errorf("wrong error: %v", derr)
			}
		})
	}
}

func TestTrigDomain(t *testing.T) {
	x := decimal.New(1, 400)
	for _, k := range []FunctionKind{FuncSine, FuncCosine, FuncTangent} {
		_, err := call(k, []decimal.Decimal{x})
		var derr *DomainError
		if !errors.As(err, &derr) {
			t.Errorf("%v of 1e400: want DomainError, got %v", k, err)
			continue
		}
		if !derr.X.Equal(x) || derr.Func != k.Symbol() || derr.Arg != 1 {
			t.Errorf("%v of 1e400: wrong error %v", k, derr)
		}
	}
}

func TestMaxMin(t *testing.T) {
	cases := []struct {
		k    FunctionKind
		a, b string
		want string
	}{
		{FuncMaximum, "3", "7", "7"},
		{FuncMaximum, "7", "3", "7"},
		{FuncMaximum, "-1", "-2", "-1"},
		{FuncMinimum, "3", "7", "3"},
		{FuncMinimum, "2.5", "2.50", "2.5"},
		{FuncMinimum, "-1", "-2", "-2"},
	}
	for _, c := range cases {
		got, err := call(c.k, []decimal.Decimal{dec(c.a), dec(c.b)})
		if err != nil {
			t.Errorf("%v(%s, %s): %v", c.k, c.a, c.b, err)
			continue
		}
		if !got.Equal(dec(c.want)) {
			t.Errorf("%v(%s, %s): want %s, got %s", c.k, c.a, c.b, c.want, got)
		}
	}
}

func TestDomainError(t *testing.T) {
	err := error(&DomainError{X: decimal.Zero, Arg: 2, Func: "/"})
	if got, want := err.Error(), "0 outside domain of / (argument 2)"; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
	var nan big.ErrNaN
	if !errors.As(err, &nan) {
		t.Errorf("%v doesn't unwrap to big.ErrNaN", err)
	}
}

func TestBigpow(t *testing.T) {
	z := new(big.Float).SetPrec(128)
	r, err := bigpow(z, big.NewFloat(9), big.NewFloat(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if f, _ := r.Float64(); f < 2.9999999 || f > 3.0000001 {
		t.Errorf("9^0.5 gave %v", r)
	}
}
