// Package match turns the token-range output of the tiler into line-range
// output suitable for a side-by-side renderer, and implements the
// template-subtraction path that strips instructor-supplied starter code
// out of a submission's token stream before it is ever tiled against
// another submission.
package match

import (
	"sort"

	"github.com/codematch/codematch/tiler"
	"github.com/codematch/codematch/token"
)

// LineMatch is an inclusive, 1-based line-range pair: lines
// [LeftFrom, LeftTo] of the left source correspond to lines
// [RightFrom, RightTo] of the right source.
type LineMatch struct {
	LeftFrom, LeftTo   uint32
	RightFrom, RightTo uint32
}

// FromTokenMatches converts tiler.Match token ranges into LineMatches,
// sorting by PatternIndex and merging adjacent ranges where LeftTo ==
// next.LeftFrom and RightTo == next.RightFrom until no merge applies.
func FromTokenMatches(matches []tiler.Match, left, right token.Stream) []LineMatch {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]tiler.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PatternIndex < sorted[j].PatternIndex
	})

	lines := make([]LineMatch, 0, len(sorted))
	for _, m := range sorted {
		lines = append(lines, LineMatch{
			LeftFrom:  left[m.PatternIndex].Line,
			LeftTo:    left[m.PatternIndex+m.Length-1].Line,
			RightFrom: right[m.TextIndex].Line,
			RightTo:   right[m.TextIndex+m.Length-1].Line,
		})
	}

	return mergeAdjacent(lines)
}

// mergeAdjacent repeatedly merges adjacent LineMatches sharing an edge
// until a fixed point is reached. It is idempotent: a second call on its
// own output returns an identical slice.
func mergeAdjacent(lines []LineMatch) []LineMatch {
	for {
		merged := false
		out := make([]LineMatch, 0, len(lines))
		i := 0
		for i < len(lines) {
			cur := lines[i]
			for i+1 < len(lines) && cur.LeftTo == lines[i+1].LeftFrom && cur.RightTo == lines[i+1].RightFrom {
				cur.LeftTo = lines[i+1].LeftTo
				cur.RightTo = lines[i+1].RightTo
				i++
				merged = true
			}
			out = append(out, cur)
			i++
		}
		lines = out
		if !merged {
			break
		}
	}
	return lines
}

// SubtractTemplate removes every token covered by a tiling match against
// template from submission, returning the remaining tokens in their
// original relative order. This is the rendering-path counterpart to the
// fingerprint-index template suppression used by the pair-scorer
// (package index): both serve different consumers — ranking versus
// visualization — and both are needed.
func SubtractTemplate(submission, template token.Stream, minimumMatch, initialSearchLength int) token.Stream {
	if len(submission) == 0 || len(template) == 0 {
		return submission
	}

	matches := tiler.Run(template.Kinds(), submission.Kinds(), minimumMatch, initialSearchLength)

	covered := make([]bool, len(submission))
	for _, m := range matches {
		for k := 0; k < m.Length; k++ {
			covered[m.TextIndex+k] = true
		}
	}

	out := make(token.Stream, 0, len(submission))
	for i, tok := range submission {
		if !covered[i] {
			out = append(out, tok)
		}
	}
	return out
}
