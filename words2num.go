// Package words2num converts spelled-out numbers and dates to digits.
//
// The package is the locale-dispatching entry point over the per-language
// parsers; Luxembourgish ("lb") is built in:
//
//	n, err := words2num.Parse("véierafoffzeg", "lb")   // 54
//	s, err := words2num.DateToNum("éischten Abrëll")   // "1.4."
//
// Locale tags resolve exactly first, then by language prefix, so "lb_LU"
// and "lb-LU" both reach the Luxembourgish parser. Additional locales can
// be added with Register.
//
//   - Parse: number phrase → Number, by locale
//   - ParseInt: cardinal phrase → int64, by locale
//   - DateToNum: Luxembourgish date phrase → "D.M." / "D.M.YYYY"
//   - Register: install a parser for a new locale tag
//
// All functions are safe for concurrent use by multiple goroutines after
// registration is done.
package words2num

import (
	"fmt"
	"strings"

	"github.com/PeterGilles/words2num/datewords"
	"github.com/PeterGilles/words2num/numwords"
)

// Number is a parsed number value; see numwords.Number.
type Number = numwords.Number

// ParseFunc parses one number phrase for a single locale.
type ParseFunc func(text string) (Number, error)

// parsers maps locale tags to their number parser. Mutated only by
// Register; lookups do not lock.
var parsers = map[string]ParseFunc{
	"lb": numwords.ParseNumber,
}

// Register installs a number parser for a locale tag. A full tag like
// "pt_BR" registers that tag only; a bare language like "pt" serves as
// the fallback for all its regional variants. Register is meant to be
// called from init functions, before any Parse call.
func Register(locale string, fn ParseFunc) {
	parsers[strings.ToLower(locale)] = fn
}

// Parse converts a spelled-out number phrase in the given locale to a
// Number. The locale is matched exactly, then by its language prefix
// ("lb_LU" falls back to "lb").
func Parse(text, locale string) (Number, error) {
	l := strings.ToLower(locale)
	fn, ok := parsers[l]
	if !ok {
		fn, ok = parsers[lang(l)]
	}
	if !ok {
		return Number{}, fmt.Errorf("words2num: unsupported locale %q", locale)
	}
	return fn(text)
}

// ParseInt converts a spelled-out cardinal in the given locale to an
// int64. A phrase with a decimal part is an error.
func ParseInt(text, locale string) (int64, error) {
	n, err := Parse(text, locale)
	if err != nil {
		return 0, err
	}
	if !n.IsInt() {
		return 0, fmt.Errorf("%w: %q is not an integer", numwords.ErrGrammar, text)
	}
	return n.Int, nil
}

// DateToNum converts a Luxembourgish date phrase to its canonical numeric
// form, "D.M." or "D.M.YYYY".
func DateToNum(text string) (string, error) {
	return datewords.DateToNum(text)
}

// lang reduces a locale tag to its lowercase language subtag:
// "lb_LU" → "lb", "LB-lu" → "lb".
func lang(locale string) string {
	l := strings.ToLower(locale)
	if i := strings.IndexAny(l, "_-"); i >= 0 {
		l = l[:i]
	}
	return l
}
