// Package numwords parses Luxembourgish number phrases into numeric values.
//
// The package provides three layers:
//
//   - Tokenize splits a phrase into role-tagged tokens, decomposing fused
//     compounds like "dräihonnert" against the lexicon.
//   - ParseCardinal folds a token sequence into an integer
//     ("véierafoffzeg" → 54).
//   - ParseNumber additionally handles decimals spoken with komma or punkt
//     ("dräi komma véier" → 3.4).
//
// The grammar-defining rule is the units-before-tens inversion:
// "véier a foffzeg" reads as 4-and-50 = 54, never 50-and-4. Hyphenated,
// spaced, and fused spellings of the same phrase are equivalent.
//
// Decimal results keep their fractional digits as a string so the
// decimal-separator presentation stays a caller choice (Format with Point
// or Comma) rather than a hardcoded convention.
//
// All functions are safe for concurrent use by multiple goroutines.
package numwords

import (
	"errors"
	"strconv"
)

var (
	// ErrTokenize reports input with nothing to tokenize: empty text or
	// text containing no letters.
	ErrTokenize = errors.New("numwords: no words in input")

	// ErrGrammar reports a token sequence that matches no accepted
	// compounding pattern.
	ErrGrammar = errors.New("numwords: invalid number grammar")
)

// Separator selects the decimal-separator character used by Number.Format.
type Separator int

const (
	// Point formats decimals with a period: "3.4".
	Point Separator = iota

	// Comma formats decimals with a comma: "3,4".
	Comma
)

// Number is a parsed number: an integer part plus the fractional digits
// exactly as spoken. Frac is empty when the phrase had no decimal mark.
// Digits after the mark are positional, so "zwee komma néng fënnef" yields
// {Int: 2, Frac: "95"}, not 2.14.
type Number struct {
	Int  int64
	Frac string
}

// IsInt reports whether the phrase was a plain cardinal without a
// decimal mark.
func (n Number) IsInt() bool {
	return n.Frac == ""
}

// Float64 returns the value as a float64. Cardinals convert exactly;
// decimals are subject to the usual binary rounding.
func (n Number) Float64() float64 {
	if n.Frac == "" {
		return float64(n.Int)
	}
	f, _ := strconv.ParseFloat(strconv.FormatInt(n.Int, 10)+"."+n.Frac, 64)
	return f
}

// Format renders the number with the chosen decimal separator.
// Cardinals render without a separator regardless of sep.
func (n Number) Format(sep Separator) string {
	s := strconv.FormatInt(n.Int, 10)
	if n.Frac == "" {
		return s
	}
	if sep == Comma {
		return s + "," + n.Frac
	}
	return s + "." + n.Frac
}

// String renders the number with a decimal point.
// Use Format to control the separator.
func (n Number) String() string {
	return n.Format(Point)
}

// ParseCardinal converts a Luxembourgish cardinal phrase to an integer.
// Input is case-insensitive; hyphenated, spaced, and fused compound
// spellings are equivalent.
func ParseCardinal(text string) (int64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return parseCardinal(tokens)
}

// ParseNumber converts a Luxembourgish number phrase, cardinal or decimal,
// to a Number. A komma or punkt token splits the phrase: the left side
// parses as a cardinal, the right side digit by digit.
func ParseNumber(text string) (Number, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return Number{}, err
	}
	return parseNumber(tokens)
}
