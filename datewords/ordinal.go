// Ordinal resolution: irregular stems 1–19 plus the productive -st pattern.
package datewords

import (
	"fmt"
	"strings"

	"github.com/PeterGilles/words2num/lexicon"
	"github.com/PeterGilles/words2num/numwords"
	"github.com/PeterGilles/words2num/phonology"
)

// SuffixState records which ordinal ending was observed on the surface
// form. The ending is orthography, not meaning: it never changes the value.
type SuffixState int

const (
	SuffixAmbiguous SuffixState = iota // bare stem, no ending observed
	SuffixKept                         // surface ended in -en
	SuffixDropped                      // surface ended in -e
)

// String returns the name of the suffix state.
func (s SuffixState) String() string {
	switch s {
	case SuffixKept:
		return "Kept"
	case SuffixDropped:
		return "Dropped"
	default:
		return "Ambiguous"
	}
}

// Ordinal is a resolved ordinal surface form.
type Ordinal struct {
	Value  int
	Stem   string
	Suffix SuffixState
}

// Mismatches reports whether the observed suffix disagrees with the
// n-rule for the following word. Ambiguous forms never mismatch.
func (o Ordinal) Mismatches(following string) bool {
	switch o.Suffix {
	case SuffixKept:
		return phonology.ExpectedSuffix(following) == phonology.SuffixDropped
	case SuffixDropped:
		return phonology.ExpectedSuffix(following) == phonology.SuffixKept
	default:
		return false
	}
}

// suffixForms lists the observable ordinal endings, longest first, so
// "-en" is tried before "-e" and the bare stem last.
var suffixForms = []struct {
	ending string
	state  SuffixState
}{
	{"en", SuffixKept},
	{"e", SuffixDropped},
	{"", SuffixAmbiguous},
}

// ResolveOrdinal resolves one ordinal word to its value and observed
// suffix state. Ordinals 1st–19th are irregular and read from the stem
// table ("éischten" → 1, "drëtte" → 3); from the 20th on the form is a
// cardinal plus -st ("eenanzwanzegsten" → 21), computed rather than
// listed.
func ResolveOrdinal(word string) (Ordinal, error) {
	w := lexicon.Normalize(word)
	for _, sf := range suffixForms {
		stem, ok := strings.CutSuffix(w, sf.ending)
		if !ok {
			continue
		}
		if v, found := lexicon.LookupOrdinalStem(stem); found {
			return Ordinal{Value: int(v), Stem: stem, Suffix: sf.state}, nil
		}
		if base, found := strings.CutSuffix(stem, "st"); found {
			if v, err := numwords.ParseCardinal(base); err == nil && v >= 20 {
				return Ordinal{Value: int(v), Stem: stem, Suffix: sf.state}, nil
			}
		}
	}
	return Ordinal{}, fmt.Errorf("%w: not an ordinal: %q", numwords.ErrGrammar, word)
}
