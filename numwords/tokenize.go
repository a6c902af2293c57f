// Tokenization of Luxembourgish number phrases.
package numwords

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PeterGilles/words2num/lexicon"
)

// Token is one lexical unit of a number phrase: a word or one segment of
// a fused compound. Tokens are consumed left to right by a single parse
// call and do not outlive it.
type Token struct {
	Text  string
	Role  lexicon.Role
	Value int64
}

// Tokenize splits text into role-tagged tokens. The input is lowercased
// and NFC-composed, split on whitespace, hyphens, and commas, and each
// resulting word is resolved against the lexicon — directly, or by greedy
// longest-match decomposition for fused compounds ("véierafoffzeg" →
// véier, a, foffzeg). Words the lexicon cannot resolve become Unknown
// tokens; whether that aborts the parse is the caller's decision.
//
// Fails only when there is nothing to tokenize: empty input or input
// without a single letter.
func Tokenize(text string) ([]Token, error) {
	fields := strings.FieldsFunc(lexicon.Normalize(text), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ','
	})

	hasWord := false
	var tokens []Token
	for _, f := range fields {
		if !hasWord {
			for _, r := range f {
				if unicode.IsLetter(r) {
					hasWord = true
					break
				}
			}
		}
		if e, ok := lexicon.Lookup(f); ok {
			tokens = append(tokens, Token{Text: e.Surface, Role: e.Role, Value: e.Value})
			continue
		}
		if entries, ok := lexicon.Segment(f); ok {
			for _, e := range entries {
				tokens = append(tokens, Token{Text: e.Surface, Role: e.Role, Value: e.Value})
			}
			continue
		}
		tokens = append(tokens, Token{Text: f, Role: lexicon.Unknown})
	}

	if !hasWord {
		return nil, fmt.Errorf("%w: %q", ErrTokenize, text)
	}
	return tokens, nil
}
