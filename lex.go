package shunt

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Segment is a piece of expression text that becomes exactly one token.
type Segment struct {
	// Text is the segment's text, in lower case.
	Text string
	// Col is the 1-based rune column of the segment's first rune in the
	// original expression.
	Col int
}

func (s Segment) String() string {
	return s.Text + "@" + strconv.Itoa(s.Col)
}

// Symbols contains the runes which always form segments by themselves.
const Symbols = "+-*/^%()," + UnaryMinusSymbol

// keywords are the names of functions and constants, longest first so that
// the segmenter prefers e.g. "sin" over a shorter name sharing its prefix.
var keywords = func() []string {
	var v []string
	for _, f := range functions {
		if f.symbol != "" {
			v = append(v, f.symbol)
		}
	}
	for _, c := range constants {
		if c.symbol != "" {
			v = append(v, c.symbol)
		}
	}
	sort.SliceStable(v, func(i, j int) bool { return len(v[i]) > len(v[j]) })
	return v
}()

type segmenter struct {
	src []rune
	// k is the index of the next rune to scan.
	k int
	// junk collects runs of runes that are not part of any known segment.
	// They are emitted as a single segment so the classifier can reject
	// them with their full text.
	junk    strings.Builder
	junkcol int
	segs    []Segment
}

// Segments splits an expression into segments. Letters are folded to lower
// case, whitespace is discarded, and numbers, symbols, and function and
// constant names are separated from whatever surrounds them. Any other text
// is passed through in segments of its own, to be rejected by Classify.
//
// A minus sign directly following a number, a constant, or a right
// parenthesis is subtraction. Every other minus sign is negation, and its
// segment is rewritten to UnaryMinusSymbol.
func Segments(expr string) []Segment {
	l := segmenter{src: []rune(expr)}
	for l.k < len(l.src) {
		r := unicode.ToLower(l.src[l.k])
		switch {
		case unicode.IsSpace(r):
			l.flush()
			l.k++
		case '0' <= r && r <= '9':
			l.flush()
			l.scanNum()
		case strings.ContainsRune(Symbols, r):
			l.flush()
			l.scanSymbol(r)
		case unicode.IsLetter(r):
			l.scanWord()
		default:
			l.keep(r, l.k)
			l.k++
		}
	}
	l.flush()
	return l.segs
}

// emit appends a segment starting at rune index k.
func (l *segmenter) emit(text string, k int) {
	l.segs = append(l.segs, Segment{Text: text, Col: k + 1})
}

// keep adds a rune at index k to the junk segment.
func (l *segmenter) keep(r rune, k int) {
	if l.junk.Len() == 0 {
		l.junkcol = k
	}
	l.junk.WriteRune(r)
}

// flush emits the junk segment, if there is one.
func (l *segmenter) flush() {
	if l.junk.Len() == 0 {
		return
	}
	l.emit(l.junk.String(), l.junkcol)
	l.junk.Reset()
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanNum scans digits with an optional fractional part. A dot that is not
// followed by a digit is not part of the number.
func (l *segmenter) scanNum() {
	start := l.k
	for l.k < len(l.src) && isDigit(l.src[l.k]) {
		l.k++
	}
	if l.k+1 < len(l.src) && l.src[l.k] == '.' && isDigit(l.src[l.k+1]) {
		l.k++
		for l.k < len(l.src) && isDigit(l.src[l.k]) {
			l.k++
		}
	}
	l.emit(string(l.src[start:l.k]), start)
}

// scanSymbol emits a single-rune symbol, deciding whether a minus sign is
// subtraction or negation.
func (l *segmenter) scanSymbol(r rune) {
	s := string(r)
	if r == '-' && !l.afterOperand() {
		s = UnaryMinusSymbol
	}
	l.emit(s, l.k)
	l.k++
}

// afterOperand reports whether the last segment ends an operand, i.e. is a
// number, a constant name, or a right parenthesis.
func (l *segmenter) afterOperand() bool {
	if len(l.segs) == 0 {
		return false
	}
	prev := l.segs[len(l.segs)-1].Text
	if prev == rightParen || isNumeral(prev) {
		return true
	}
	_, ok := lookupConstant(prev)
	return ok
}

// scanWord scans a run of letters, splitting out every keyword in it.
// Letters between keywords go to the junk segment.
func (l *segmenter) scanWord() {
	start := l.k
	for l.k < len(l.src) && unicode.IsLetter(l.src[l.k]) {
		l.k++
	}
	word := []rune(strings.ToLower(string(l.src[start:l.k])))
	if len(word) != l.k-start {
		// Case folding changed the rune count, so columns can't be mapped.
		// Nothing with such letters can be a keyword anyway.
		for i := start; i < l.k; i++ {
			l.keep(unicode.ToLower(l.src[i]), i)
		}
		return
	}
	for i := 0; i < len(word); {
		kw := matchKeyword(word[i:])
		if kw == "" {
			l.keep(word[i], start+i)
			i++
			continue
		}
		l.flush()
		l.emit(kw, start+i)
		i += len(kw)
	}
}

// matchKeyword returns the longest keyword that word starts with, or the
// empty string if there is none. Keywords are ASCII, so byte lengths equal
// rune lengths.
func matchKeyword(word []rune) string {
	for _, kw := range keywords {
		if len(word) < len(kw) {
			continue
		}
		if string(word[:len(kw)]) == kw {
			return kw
		}
	}
	return ""
}

// isNumeral reports whether s is digits with an optional fractional part,
// the only number syntax the segmenter produces.
func isNumeral(s string) bool {
	dot := false
	n := 0
	for i, r := range s {
		switch {
		case isDigit(r):
			n++
		case r == '.' && !dot && n > 0 && i+1 < len(s):
			dot = true
			n = 0
		default:
			return false
		}
	}
	return n > 0
}
