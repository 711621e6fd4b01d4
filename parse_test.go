package shunt

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		seg  Segment
		kind TokenKind
		text string
	}{
		{"int", Segment{"12", 3}, TokenNumber, "12"},
		{"frac", Segment{"12.50", 1}, TokenNumber, "12.5"},
		{"pi", Segment{"pi", 1}, TokenNumber, "3.1415926535897932384626433833"},
		{"e", Segment{"e", 1}, TokenNumber, "2.7182818284590452353602874714"},
		{"add", Segment{"+", 1}, TokenOperator, "+"},
		{"sub", Segment{"-", 1}, TokenOperator, "-"},
		{"neg", Segment{"~", 1}, TokenOperator, "~"},
		{"pow", Segment{"^", 1}, TokenOperator, "^"},
		{"mod", Segment{"%", 1}, TokenOperator, "%"},
		{"open", Segment{"(", 1}, TokenParen, "("},
		{"close", Segment{")", 1}, TokenParen, ")"},
		{"sin", Segment{"sin", 1}, TokenFunction, "sin"},
		{"max", Segment{"max", 1}, TokenFunction, "max"},
		{"sep", Segment{",", 1}, TokenSeparator, ","},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tok, err := Classify(c.seg)
			if err != nil {
				t.Fatal(err)
			}
			if tok.Kind() != c.kind {
				t.Errorf("wrong kind: want %v, got %v", c.kind, tok.Kind())
			}
			if tok.String() != c.text {
				t.Errorf("wrong text: want %q, got %q", c.text, tok.String())
			}
			if tok.Pos() != c.seg.Col {
				t.Errorf("wrong position: want %d, got %d", c.seg.Col, tok.Pos())
			}
		})
	}
}

func TestClassifyParenSides(t *testing.T) {
	l, err := Classify(Segment{"(", 1})
	if err != nil {
		t.Fatal(err)
	}
	r, err := Classify(Segment{")", 2})
	if err != nil {
		t.Fatal(err)
	}
	if l.Side() != Left || !l.isLeft() {
		t.Errorf("( has side %v", l.Side())
	}
	if r.Side() != Right || r.isLeft() {
		t.Errorf(") has side %v", r.Side())
	}
}

func TestClassifyPrec(t *testing.T) {
	tok, err := Classify(Segment{"pi", 1}, Prec(4))
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("3.1416"); !tok.Value().Equal(want) {
		t.Errorf("pi to 4 places: want %v, got %v", want, tok.Value())
	}
}

func TestClassifyError(t *testing.T) {
	cases := []Segment{
		{"foo", 1},
		{"$", 7},
		{".", 2},
		{"1.", 1},
		{"π", 3},
		{"sinh", 1},
	}
	for _, seg := range cases {
		t.Run(seg.Text, func(t *testing.T) {
			_, err := Classify(seg)
			var terr *TokenError
			if !errors.As(err, &terr) {
				t.Fatalf("want TokenError, got %#v", err)
			}
			if terr.Text != seg.Text || terr.Pos() != seg.Col {
				t.Errorf("wrong error for %v: %#v", seg, terr)
			}
			if !strings.Contains(terr.Error(), seg.Text) {
				t.Errorf("%q doesn't name %q", terr.Error(), seg.Text)
			}
		})
	}
}

func TestParse(t *testing.T) {
	q, err := Parse("max(2, -pi) % 3")
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]TokenKind, len(q))
	for i, tok := range q {
		kinds[i] = tok.Kind()
	}
	want := []TokenKind{
		TokenFunction, TokenParen, TokenNumber, TokenSeparator, TokenOperator,
		TokenNumber, TokenParen, TokenOperator, TokenNumber,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("wrong token kinds (-want +got):\n%s", diff)
	}
	if q[4].Operator() != OpUnaryMinus {
		t.Errorf("minus after separator is %v, not negation", q[4].Operator())
	}
	if q[7].Operator() != OpModulo {
		t.Errorf("%% parsed as %v", q[7].Operator())
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("1 + two")
	var terr *TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("want TokenError, got %#v", err)
	}
	// No keyword occurs in "two", so it stays one segment.
	if terr.Text != "two" || terr.Col != 5 {
		t.Errorf("wrong error: %#v", terr)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"2+3*4", "2 + 3 * 4"},
		{"  2   +3 ", "2 + 3"},
		{"-5+3", "~ 5 + 3"},
		{"5--3", "5 - ~ 3"},
		{"MAX(3,7)", "max ( 3 , 7 )"},
		{"2.50 * 1.0", "2.5 * 1"},
		{"(1)-(2)", "( 1 ) - ( 2 )"},
	}
	for _, c := range cases {
		got, err := Normalize(c.src)
		if err != nil {
			t.Errorf("%q: %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
	got, err := Normalize("2 * pi", Prec(2))
	if err != nil {
		t.Fatal(err)
	}
	if got != "2 * 3.14" {
		t.Errorf("pi at 2 places normalized to %q", got)
	}
}
