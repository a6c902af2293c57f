// Magnitude-fold evaluation of tokenized number phrases.
package numwords

import (
	"fmt"
	"strings"

	"github.com/PeterGilles/words2num/lexicon"
)

// maxAbs bounds parse results to 10^18, the largest power of ten an int64
// can hold.
const maxAbs int64 = 1_000_000_000_000_000_000

// parseCardinal folds a token sequence into an integer. Units, teens, and
// tens accumulate into a group below the next scale word; honnert
// multiplies the group in place; dausend and larger fold the group into
// the running total.
func parseCardinal(tokens []Token) (int64, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty number phrase", ErrGrammar)
	}
	// Lone "null" is zero; inside a compound it is rejected below.
	if len(tokens) == 1 && tokens[0].Role == lexicon.Unit && tokens[0].Value == 0 {
		return 0, nil
	}

	var (
		total          int64
		group          int64
		hundredApplied bool // honnert already applied within this group
		prevRole       = lexicon.Unknown
		prevBigScale   bool // previous token was dausend or larger
	)

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		bigScale := false

		switch t.Role {
		case lexicon.Unit:
			if t.Value == 0 {
				return 0, fmt.Errorf("%w: null inside a compound", ErrGrammar)
			}
			// Units-before-tens inversion: UNIT a/an TEN reads as
			// unit+ten ("véier a foffzeg" = 54). Must be checked before
			// the standalone unit reading.
			if i+2 < len(tokens) &&
				tokens[i+1].Role == lexicon.Connector &&
				tokens[i+2].Role == lexicon.Ten {
				group += t.Value + tokens[i+2].Value
				i += 2
				prevRole = lexicon.Ten
				prevBigScale = false
				continue
			}
			// Connectorless inversion: "véier foffzeg" = 54.
			if i+1 < len(tokens) && tokens[i+1].Role == lexicon.Ten {
				group += t.Value + tokens[i+1].Value
				i++
				prevRole = lexicon.Ten
				prevBigScale = false
				continue
			}
			group += t.Value

		case lexicon.Teen, lexicon.Ten:
			group += t.Value

		case lexicon.Connector:
			// Outside the inversion the particle is a plain additive
			// "and", valid only between a scale word and a following
			// group ("dräi dausend an eenhonnert zwanzeg" = 3120).
			if prevRole != lexicon.Scale || i+1 >= len(tokens) {
				return 0, fmt.Errorf("%w: dangling connector %q", ErrGrammar, t.Text)
			}

		case lexicon.Scale:
			if t.Value == lexicon.Hundred {
				if hundredApplied {
					return 0, fmt.Errorf("%w: repeated scale word %q", ErrGrammar, t.Text)
				}
				if group == 0 {
					group = 1 // bare "honnert" means 100
				}
				group *= lexicon.Hundred
				hundredApplied = true
			} else {
				if prevBigScale {
					return 0, fmt.Errorf("%w: repeated scale word %q", ErrGrammar, t.Text)
				}
				if group == 0 {
					group = 1 // bare "dausend" means 1000
				}
				if group > maxAbs/t.Value {
					return 0, fmt.Errorf("%w: out of range", ErrGrammar)
				}
				product := group * t.Value
				if total > maxAbs-product {
					return 0, fmt.Errorf("%w: out of range", ErrGrammar)
				}
				total += product
				group = 0
				hundredApplied = false
				bigScale = true
			}

		default:
			return 0, fmt.Errorf("%w: unexpected word %q", ErrGrammar, t.Text)
		}

		prevRole = t.Role
		prevBigScale = bigScale
	}

	if total > maxAbs-group {
		return 0, fmt.Errorf("%w: out of range", ErrGrammar)
	}
	return total + group, nil
}

// parseNumber splits the token sequence at a decimal mark, if any, and
// combines the cardinal integer part with the spoken fractional digits.
func parseNumber(tokens []Token) (Number, error) {
	mark := -1
	for i, t := range tokens {
		if t.Role == lexicon.DecimalMark {
			if mark >= 0 {
				return Number{}, fmt.Errorf("%w: repeated decimal mark %q", ErrGrammar, t.Text)
			}
			mark = i
		}
	}

	if mark < 0 {
		n, err := parseCardinal(tokens)
		if err != nil {
			return Number{}, err
		}
		return Number{Int: n}, nil
	}

	intPart, err := parseCardinal(tokens[:mark])
	if err != nil {
		return Number{}, err
	}
	frac, err := fracDigits(tokens[mark+1:])
	if err != nil {
		return Number{}, err
	}
	return Number{Int: intPart, Frac: frac}, nil
}

// fracDigits reads the tokens after the decimal mark as digits spoken in
// sequence. Each token must be a unit 0–9; digits concatenate
// positionally, so "néng fënnef" is "95", not 14.
func fracDigits(tokens []Token) (string, error) {
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: no digits after decimal mark", ErrGrammar)
	}
	var b strings.Builder
	b.Grow(len(tokens))
	for _, t := range tokens {
		if t.Role != lexicon.Unit {
			return "", fmt.Errorf("%w: %q is not a digit word", ErrGrammar, t.Text)
		}
		b.WriteByte(byte('0' + t.Value))
	}
	return b.String(), nil
}
