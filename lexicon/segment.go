// Greedy longest-match decomposition of fused number compounds.
package lexicon

// maxSurfaceBytes is the byte length of the longest segmentable surface
// form, computed at init. It bounds the prefix scan at each position.
var maxSurfaceBytes int

func init() {
	for w, e := range words {
		if segmentable(e.Role) && len(w) > maxSurfaceBytes {
			maxSurfaceBytes = len(w)
		}
	}
}

// segmentable reports whether entries of role r may appear inside a fused
// compound. Months, ordinal stems, and decimal marks never fuse.
func segmentable(r Role) bool {
	switch r {
	case Unit, Teen, Ten, Scale, Connector:
		return true
	}
	return false
}

// Segment decomposes a fused compound like "dräihonnert" or
// "nonnzénghonnertnénganzwanzeg" into its component entries.
// Matching is greedy longest-first with backtracking, so "siwenzéng"
// resolves as the teen 17 rather than "siwen" + a dangling tail.
// The whole word must be consumed; ok is false when no decomposition exists.
func Segment(word string) ([]Entry, bool) {
	w := Normalize(word)
	if w == "" {
		return nil, false
	}
	if e, ok := words[w]; ok && segmentable(e.Role) {
		return []Entry{e}, true
	}
	var out []Entry
	if !segment(w, 0, make([]bool, len(w)+1), &out) {
		return nil, false
	}
	return out, true
}

// segment matches entries starting at byte position pos, longest first.
// dead marks positions from which no suffix decomposition exists, keeping
// the worst case linear in practice even for adversarial input.
func segment(s string, pos int, dead []bool, out *[]Entry) bool {
	if pos == len(s) {
		return true
	}
	if dead[pos] {
		return false
	}
	limit := len(s) - pos
	if limit > maxSurfaceBytes {
		limit = maxSurfaceBytes
	}
	for n := limit; n > 0; n-- {
		e, ok := words[s[pos:pos+n]]
		if !ok || !segmentable(e.Role) {
			continue
		}
		*out = append(*out, e)
		if segment(s, pos+n, dead, out) {
			return true
		}
		*out = (*out)[:len(*out)-1]
	}
	dead[pos] = true
	return false
}
