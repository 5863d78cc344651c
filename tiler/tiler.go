// Package tiler implements Running Karp-Rabin Greedy String Tiling
// (RKR-GST): it finds maximal, non-overlapping common substrings
// between two kind-sequences, the discipline used to turn a chosen pair
// of submissions into concrete matched token ranges for rendering.
package tiler

// Match is a maximal contiguous region of Length >= minimumMatch where
// pattern[PatternIndex+i].Kind == text[TextIndex+i].Kind for all
// i < Length, and no longer match fully contains it.
type Match struct {
	PatternIndex int
	TextIndex    int
	Length       int
}

// Run finds the RKR-GST tiling of pattern against text.
//
// Returned matches are pairwise non-overlapping in both pattern and
// text; every returned match has length >= minimumMatch; no returned
// match can be extended on either end without overlapping another
// returned match or running off the end.
//
// The reference implementation's documented defaults pass
// initialSearchLength (20) smaller than minimumMatch (40) — searching
// starts at the initial length regardless of how it compares to the
// floor, but no match shorter than minimumMatch is ever tiled or
// returned; this keeps the output contract intact even when the first
// (and only, in that case) pass searches below the floor.
func Run(pattern, text []byte, minimumMatch, initialSearchLength int) []Match {
	if minimumMatch < 1 {
		minimumMatch = 1
	}
	searchLength := initialSearchLength
	if searchLength < 1 {
		searchLength = minimumMatch
	}

	patUsed := make([]bool, len(pattern))
	textUsed := make([]bool, len(text))
	var matches []Match

	for first := true; first || searchLength >= minimumMatch; searchLength /= 2 {
		first = false

		for {
			best, ok := longestMatch(pattern, text, patUsed, textUsed, searchLength)
			if !ok || best.Length < minimumMatch {
				break
			}
			tile(patUsed, textUsed, best)
			matches = append(matches, best)
		}
	}
	return matches
}

// longestMatch scans every untiled (i, j) starting pair and returns the
// longest contiguous run of equal, untiled kinds of length >= minLen.
// Ties favor the earliest pattern index, then the earliest text index.
func longestMatch(pattern, text []byte, patUsed, textUsed []bool, minLen int) (Match, bool) {
	var best Match
	found := false

	for i := 0; i < len(pattern); i++ {
		if patUsed[i] {
			continue
		}
		for j := 0; j < len(text); j++ {
			if textUsed[j] || pattern[i] != text[j] {
				continue
			}

			length := 0
			for i+length < len(pattern) && j+length < len(text) &&
				!patUsed[i+length] && !textUsed[j+length] &&
				pattern[i+length] == text[j+length] {
				length++
			}

			if length >= minLen && length > best.Length {
				best = Match{PatternIndex: i, TextIndex: j, Length: length}
				found = true
			}
		}
	}
	return best, found
}

// tile marks the tokens covered by m as used in both streams, so later
// passes never overlap it.
func tile(patUsed, textUsed []bool, m Match) {
	for k := 0; k < m.Length; k++ {
		patUsed[m.PatternIndex+k] = true
		textUsed[m.TextIndex+k] = true
	}
}
