package numwords

import "testing"

// FuzzParseNumber verifies that ParseNumber never panics and that every
// successful parse yields digit-only fractional output.
func FuzzParseNumber(f *testing.F) {
	f.Add("")
	f.Add("véierafoffzeg")
	f.Add("dräi komma véier")
	f.Add("véier-a-foffzeg")
	f.Add("nonnzénghonnertnénganzwanzeg")
	f.Add("dausend dausend")
	f.Add("an an an")
	f.Add("hello world")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseNumber(s)
		if err != nil {
			return
		}
		for _, c := range n.Frac {
			if c < '0' || c > '9' {
				t.Errorf("ParseNumber(%q).Frac = %q: non-digit", s, n.Frac)
			}
		}
	})
}

// FuzzTokenize verifies that Tokenize never panics for any string input.
func FuzzTokenize(f *testing.F) {
	f.Add("")
	f.Add("véier a foffzeg")
	f.Add("dräi---honnert")
	f.Add(",,,")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_, _ = Tokenize(s)
	})
}
