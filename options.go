package shunt

import "strconv"

// DefaultPrec is the number of decimal places used for division, fractional
// exponents, and constants when no Prec option is given.
const DefaultPrec = 28

// Option is an option for parsing or evaluating expressions.
type Option interface {
	option(settings) settings
}

// settings holds the options in effect for one call.
type settings struct {
	// places is the number of digits after the decimal point kept by inexact
	// operations.
	places int32
}

type precopt int32

// Prec sets the number of digits after the decimal point to which inexact
// results are rounded. Addition, subtraction, multiplication, and integer
// powers are always exact. Panics if places is negative.
func Prec(places int32) Option {
	if places < 0 {
		panic("shunt: negative precision " + strconv.Itoa(int(places)))
	}
	return precopt(places)
}

func (o precopt) option(s settings) settings {
	s.places = int32(o)
	return s
}

// configure applies options in order to the defaults.
func configure(opts []Option) settings {
	s := settings{places: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		s = opt.option(s)
	}
	return s
}
