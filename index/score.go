package index

import (
	"sort"

	"github.com/codematch/codematch/internal/slicesx"
)

// PairScore is one scored unordered submission pair.
type PairScore struct {
	A, B  SubmissionID
	Score int
}

// ReferenceSet reports whether a submission belongs to a designated
// "known legitimate source" set; pairs where both submissions satisfy
// it are optionally excluded from the ranked output.
type ReferenceSet func(SubmissionID) bool

// Rank scores every unordered submission pair appearing together in a
// bucket of size <= commonCutoff, then returns the top numberOfReport
// pairs by score, highest first. Buckets larger than commonCutoff are
// skipped wholesale (common-code suppression): a fingerprint shared by
// more than commonCutoff submissions is treated as incidentally common
// rather than evidence of copying.
//
// Pairs are deduplicated per bucket by submission identity before
// scoring, so a submission that occurs at several offsets within one
// bucket still contributes at most one increment to any pair it forms.
//
// referenceSet may be nil, in which case no pair is excluded.
func Rank(idx *Index, commonCutoff, numberOfReport int, referenceSet ReferenceSet) []PairScore {
	scores := make(map[pairKey]int)

	idx.walk(func(_ uint64, entries []posting) {
		if len(entries) > commonCutoff {
			return
		}
		distinct := distinctSubmissions(entries)
		for i := 0; i < len(distinct); i++ {
			for j := i + 1; j < len(distinct); j++ {
				scores[newPairKey(distinct[i], distinct[j])]++
			}
		}
	})

	// Offer pairs in a fixed (a, b) order so that which of several
	// equal-score pairs lands in the top-N does not depend on map order.
	keys := make([]pairKey, 0, len(scores))
	for pk := range scores {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	heap := slicesx.NewHeap[int, PairScore](numberOfReport)
	for _, pk := range keys {
		score := scores[pk]
		if referenceSet != nil && referenceSet(pk.a) && referenceSet(pk.b) {
			continue
		}
		heap.PushBounded(score, PairScore{A: pk.a, B: pk.b, Score: score}, numberOfReport)
	}

	_, vals := heap.Drain()
	// Drain returns ascending order; the caller wants highest-scored
	// first.
	out := make([]PairScore, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v
	}
	return out
}

// pairKey is a canonical, order-independent key for an unordered pair of
// submission IDs.
type pairKey struct {
	a, b SubmissionID
}

func newPairKey(x, y SubmissionID) pairKey {
	if x <= y {
		return pairKey{a: x, b: y}
	}
	return pairKey{a: y, b: x}
}

// distinctSubmissions returns the distinct submission IDs present in a
// bucket, each appearing once regardless of how many offsets it
// occupies.
func distinctSubmissions(entries []posting) []SubmissionID {
	seen := make(map[SubmissionID]bool, len(entries))
	out := make([]SubmissionID, 0, len(entries))
	for _, e := range entries {
		if !seen[e.submission] {
			seen[e.submission] = true
			out = append(out, e.submission)
		}
	}
	return out
}
