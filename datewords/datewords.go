// Package datewords parses Luxembourgish date phrases into canonical
// numeric form.
//
// A date phrase is an ordinal (or cardinal) day, a month name or
// abbreviation, and an optional year phrase:
//
//	"éischten Abrëll"                        → "1.4."
//	"drëtte Mäerz nonnzénghonnertnénganzwanzeg" → "3.3.1929"
//
// Two API layers are provided:
//
//   - Parse returns a Date with day, month, optional year, and the n-rule
//     verdict on the ordinal's suffix.
//   - DateToNum returns the formatted "D.M." or "D.M.YYYY" string directly.
//
// Day and month are validated by grammar range only (day 1–31, month 1–12);
// calendar validity is not checked, so the 30th of February parses.
// An ordinal suffix that disagrees with the n-rule for the following month
// ("éischten Februar") is never an error: the numeric value does not depend
// on the suffix, so the mismatch is only reported on the result.
//
// All functions are safe for concurrent use by multiple goroutines.
package datewords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PeterGilles/words2num/lexicon"
	"github.com/PeterGilles/words2num/numwords"
)

// ErrDateGrammar reports a phrase that does not parse as a date: no
// recognizable day ordinal, an unknown month, or an unparseable year.
var ErrDateGrammar = errors.New("datewords: invalid date grammar")

// maxDay bounds the day value by grammar; the composer does not check
// how many days the month actually has.
const maxDay = 31

// Date is a parsed date phrase. Year is 0 when the phrase had no year
// part. SuffixMismatch reports an ordinal suffix that disagrees with the
// n-rule for the following month word; it is informational only.
type Date struct {
	Day            int
	Month          int
	Year           int
	SuffixMismatch bool
}

// String renders the canonical numeric form: "D.M." without a year,
// "D.M.YYYY" with one.
func (d Date) String() string {
	if d.Year == 0 {
		return strconv.Itoa(d.Day) + "." + strconv.Itoa(d.Month) + "."
	}
	return strconv.Itoa(d.Day) + "." + strconv.Itoa(d.Month) + "." + strconv.Itoa(d.Year)
}

// DateToNum converts a Luxembourgish date phrase to its canonical numeric
// form, "D.M." or "D.M.YYYY".
func DateToNum(text string) (string, error) {
	d, err := Parse(text)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Parse parses a Luxembourgish date phrase. The ordinal and month may be
// space- or hyphen-joined; the year may be fused, hyphenated, or spaced.
func Parse(text string) (Date, error) {
	fields := splitFields(text)
	if len(fields) < 2 {
		return Date{}, fmt.Errorf("%w: %q is not a date phrase", ErrDateGrammar, text)
	}

	ord, err := resolveDay(fields[0])
	if err != nil {
		return Date{}, err
	}
	if ord.Value < 1 || ord.Value > maxDay {
		return Date{}, fmt.Errorf("%w: day %d out of range", ErrDateGrammar, ord.Value)
	}

	monthWord := fields[1]
	month, ok := lexicon.LookupMonth(monthWord)
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown month %q", ErrDateGrammar, monthWord)
	}

	year := 0
	if rest := fields[2:]; len(rest) > 0 {
		y, err := numwords.ParseCardinal(strings.Join(rest, " "))
		if err != nil {
			return Date{}, fmt.Errorf("%w: year: %v", ErrDateGrammar, err)
		}
		year = int(y)
	}

	return Date{
		Day:            ord.Value,
		Month:          month,
		Year:           year,
		SuffixMismatch: ord.Mismatches(monthWord),
	}, nil
}

// resolveDay reads the day part: an ordinal like "éischten", or a plain
// cardinal day as heard in looser speech ("fënnef Januar").
func resolveDay(word string) (Ordinal, error) {
	ord, err := ResolveOrdinal(word)
	if err == nil {
		return ord, nil
	}
	if n, cerr := numwords.ParseCardinal(word); cerr == nil && n >= 1 && n <= maxDay {
		return Ordinal{Value: int(n), Stem: word, Suffix: SuffixAmbiguous}, nil
	}
	return Ordinal{}, fmt.Errorf("%w: no day ordinal in %q", ErrDateGrammar, word)
}

// splitFields lowercases and splits a date phrase on whitespace, hyphens,
// and commas, dropping a trailing period after the last word.
func splitFields(text string) []string {
	fields := strings.FieldsFunc(lexicon.Normalize(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ','
	})
	for i, f := range fields {
		fields[i] = strings.TrimSuffix(f, ".")
	}
	return fields
}
