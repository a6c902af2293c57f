// Tests for the numwords package: Tokenize, ParseCardinal, ParseNumber.
package numwords

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseCardinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  int64
	}{
		{"zero", "null", 0},
		{"one", "eent", 1},
		{"four", "véier", 4},
		{"ten", "zéng", 10},
		{"nineteen", "nonnzéng", 19},
		{"twenty", "zwanzeg", 20},
		{"twenty-one fused", "eenanzwanzeg", 21},
		{"forty-two fused", "zweeavéierzeg", 42},
		{"fifty-four fused", "véierafoffzeg", 54},
		{"fifty-four hyphenated", "véier-a-foffzeg", 54},
		{"fifty-four spaced", "véier a foffzeg", 54},
		{"fifty-four no connector", "véier foffzeg", 54},
		{"eighty-four fused", "véieranachtzeg", 84},
		{"hundred bare", "honnert", 100},
		{"hundred explicit", "eenhonnert", 100},
		{"hundred one", "eenhonnerteent", 101},
		{"hundred two reversed", "honnertzwee", 102},
		{"hundred twenty-two", "eenhonnert zweeanzwanzeg", 122},
		{"hundred thirty-two", "eenhonnert zweeadräisseg", 132},
		{"hundred thirty-two hyphenated", "een-honnert-zweeandrësseg", 132},
		{"three hundred fused", "dräihonnert", 300},
		{"three hundred hyphenated", "dräi-honnert", 300},
		{"nine hundred", "nénghonnert", 900},
		{"thousand bare", "dausend", 1000},
		{"thousand explicit", "eendausend", 1000},
		{"thousand compound", "eendausenddräihonnertdräizéng", 1313},
		{"year style", "nonnzénghonnertnénganzwanzeg", 1929},
		{"two thousand fifteen", "zweedausendfofzéng", 2015},
		{"complex spaced", "zwee dausend dräihonnert véierafoffzeg", 2354},
		{"additive connector", "dräi dausend an eenhonnert zwanzeg", 3120},
		{"thousand after inversion", "véierdausendvéierafoffzeg", 4054},
		{"ten thousand", "zéngdausend", 10000},
		{"ten thousand compound", "zéngdausenddräihonnertdräizéng", 10313},
		{"eleven thousand fifteen", "eelefdausendfofzéng", 11015},
		{"thirty-four thousand", "véierandrësseg dausend", 34000},
		{"million", "eng millioun", 1000000},
		{"million and one", "eng millioun eent", 1000001},
		{"capitalized", "Dräi Milliounen", 3000000},
		{"million mixed scale", "eng millioun fënnefhonnert dausend", 1500000},
		{"millions with thousands", "dräi milliounen zweehonnert dausend", 3200000},
		{"milliard bare", "milliard", 1000000000},
		{"billioun bare", "billioun", 1000000000000},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCardinal(tt.input)
			if err != nil {
				t.Fatalf("ParseCardinal(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCardinal(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCardinalErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", ErrTokenize},
		{"whitespace only", "   ", ErrTokenize},
		{"punctuation only", "?!", ErrTokenize},
		{"unknown word", "moien", ErrGrammar},
		{"unknown inside phrase", "dräi moien", ErrGrammar},
		{"trailing connector", "véier an", ErrGrammar},
		{"leading connector", "an zwanzeg", ErrGrammar},
		{"connector between units", "véier an dausend", ErrGrammar},
		{"repeated thousand", "dausend dausend", ErrGrammar},
		{"repeated hundred", "honnert honnert", ErrGrammar},
		{"zero in compound", "null eent", ErrGrammar},
		{"decimal mark in cardinal", "véier komma", ErrGrammar},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCardinal(tt.input)
			if err == nil {
				t.Fatalf("ParseCardinal(%q) = %d, want error", tt.input, got)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("ParseCardinal(%q) error = %v, want %v", tt.input, err, tt.err)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		wantInt  int64
		wantFrac string
	}{
		{"cardinal passthrough", "véierafoffzeg", 54, ""},
		{"comma decimal", "dräi komma véier", 3, "4"},
		{"punkt decimal", "zwee punkt néng fënnef", 2, "95"},
		{"leading zero digit", "eenhonnert komma null eent", 100, "01"},
		{"digit sequence", "zwee punkt dräi fënnef", 2, "35"},
		{"zero integer part", "null komma fënnef", 0, "5"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseNumber(tt.input)
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tt.input, err)
			}
			if got.Int != tt.wantInt || got.Frac != tt.wantFrac {
				t.Errorf("ParseNumber(%q) = {%d %q}, want {%d %q}",
					tt.input, got.Int, got.Frac, tt.wantInt, tt.wantFrac)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"no digits after mark", "zwee komma"},
		{"nothing before mark", "komma véier"},
		{"repeated mark", "dräi komma véier komma fënnef"},
		{"teen in fraction", "dräi komma zéng"},
		{"ten in fraction", "dräi komma zwanzeg"},
		{"unknown in fraction", "dräi komma moien"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseNumber(tt.input)
			if err == nil {
				t.Fatalf("ParseNumber(%q) = %v, want error", tt.input, got)
			}
			if !errors.Is(err, ErrGrammar) {
				t.Errorf("ParseNumber(%q) error = %v, want ErrGrammar", tt.input, err)
			}
		})
	}
}

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		n     Number
		sep   Separator
		want  string
		float float64
	}{
		{"cardinal point", Number{Int: 54}, Point, "54", 54},
		{"cardinal comma ignored", Number{Int: 54}, Comma, "54", 54},
		{"decimal point", Number{Int: 3, Frac: "4"}, Point, "3.4", 3.4},
		{"decimal comma", Number{Int: 3, Frac: "4"}, Comma, "3,4", 3.4},
		{"positional digits", Number{Int: 2, Frac: "95"}, Point, "2.95", 2.95},
		{"leading zero", Number{Int: 100, Frac: "01"}, Comma, "100,01", 100.01},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.n.Format(tt.sep); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.sep, got, tt.want)
			}
			if got := tt.n.Float64(); got != tt.float {
				t.Errorf("Float64() = %v, want %v", got, tt.float)
			}
		})
	}
}

func TestTokenizeUnknownWords(t *testing.T) {
	t.Parallel()

	// Unknown words tokenize without error; rejecting them is the
	// parser's call.
	tokens, err := Tokenize("dräi moien")
	if err != nil {
		t.Fatalf("Tokenize: unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("Tokenize: got %d tokens, want 2", len(tokens))
	}
	if tokens[1].Text != "moien" {
		t.Errorf("unknown token text = %q, want %q", tokens[1].Text, "moien")
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	const input = "zwee dausend dräihonnert véierafoffzeg"
	first, err := ParseCardinal(input)
	if err != nil {
		t.Fatalf("ParseCardinal(%q) error: %v", input, err)
	}
	for i := 0; i < 100; i++ {
		got, err := ParseCardinal(input)
		if err != nil || got != first {
			t.Fatalf("ParseCardinal(%q) drifted: got %d, %v; first was %d",
				input, got, err, first)
		}
	}
}

func ExampleParseCardinal() {
	n, _ := ParseCardinal("véier-a-foffzeg")
	fmt.Println(n)
	// Output: 54
}

func ExampleParseNumber() {
	n, _ := ParseNumber("dräi komma véier")
	fmt.Println(n.Format(Comma))
	// Output: 3,4
}

func BenchmarkParseCardinal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseCardinal("nonnzénghonnertnénganzwanzeg")
	}
}

func BenchmarkParseNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseNumber("zwee punkt néng fënnef")
	}
}
