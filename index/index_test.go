package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codematch/codematch/winnow"
)

func kindsOf(s string) []byte {
	return []byte(s)
}

// TestTemplateSuppressionZerosScore checks that when two submissions
// are byte-identical to the template, their pair score is fully
// suppressed regardless of length.
func TestTemplateSuppressionZerosScore(t *testing.T) {
	template := kindsOf("abcdefghijklmnopqrstuvwxyz")
	const noise = 5

	templateFp := winnow.AllFingerprints(template, noise)
	fpA := winnow.AllFingerprints(template, noise)
	fpB := winnow.AllFingerprints(template, noise)

	idx := New(map[SubmissionID][]winnow.Fingerprint{
		1: fpA,
		2: fpB,
	})
	idx.SuppressTemplate(templateFp)

	ranked := Rank(idx, 100, 10, nil)
	for _, pair := range ranked {
		if (pair.A == 1 && pair.B == 2) || (pair.A == 2 && pair.B == 1) {
			t.Fatalf("expected pair (1,2) to be fully suppressed, got score %d", pair.Score)
		}
	}
}

// TestCommonCutoffSuppressesBucket checks that a fingerprint shared by
// more submissions than commonCutoff contributes nothing to any pair's
// score.
func TestCommonCutoffSuppressesBucket(t *testing.T) {
	const commonCutoff = 10
	const k = 20

	fingerprints := make(map[SubmissionID][]winnow.Fingerprint, k)
	for i := 0; i < k; i++ {
		fingerprints[SubmissionID(i)] = []winnow.Fingerprint{{Hash: 42, Offset: 0}}
	}

	idx := New(fingerprints)
	ranked := Rank(idx, commonCutoff, 50, nil)
	assert.Empty(t, ranked, "bucket of size 20 with cutoff 10 must contribute no pairs")
}

// TestDistinctPairsScoredBelowCutoff checks that a bucket at or below the
// cutoff does contribute, and every unordered pair within it is scored.
func TestDistinctPairsScoredBelowCutoff(t *testing.T) {
	fingerprints := map[SubmissionID][]winnow.Fingerprint{
		1: {{Hash: 1, Offset: 0}},
		2: {{Hash: 1, Offset: 0}},
		3: {{Hash: 1, Offset: 0}},
	}
	idx := New(fingerprints)
	ranked := Rank(idx, 10, 10, nil)
	require.Len(t, ranked, 3)
	for _, pair := range ranked {
		assert.Equal(t, 1, pair.Score)
	}
}

// TestReferenceSetExcludesBothKnownPairs checks that a pair is dropped
// only when both its members satisfy the reference-set predicate.
func TestReferenceSetExcludesBothKnownPairs(t *testing.T) {
	fingerprints := map[SubmissionID][]winnow.Fingerprint{
		1: {{Hash: 1, Offset: 0}},
		2: {{Hash: 1, Offset: 0}},
		3: {{Hash: 1, Offset: 0}},
	}
	idx := New(fingerprints)
	known := func(id SubmissionID) bool { return id == 1 || id == 2 }

	ranked := Rank(idx, 10, 10, known)
	for _, pair := range ranked {
		assert.False(t, pair.A == 1 && pair.B == 2, "pair (1,2) are both reference submissions and must be excluded")
		assert.False(t, pair.A == 2 && pair.B == 1, "pair (1,2) are both reference submissions and must be excluded")
	}
	require.Len(t, ranked, 2) // (1,3) and (2,3) survive
}

// TestRepeatedOffsetWithinBucketCountsOnce checks that a submission with
// several offsets in the same bucket still contributes at most one
// increment to any pair's score.
func TestRepeatedOffsetWithinBucketCountsOnce(t *testing.T) {
	fingerprints := map[SubmissionID][]winnow.Fingerprint{
		1: {{Hash: 9, Offset: 0}, {Hash: 9, Offset: 5}, {Hash: 9, Offset: 10}},
		2: {{Hash: 9, Offset: 2}},
	}
	idx := New(fingerprints)
	ranked := Rank(idx, 10, 10, nil)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Score)
}

// TestTopNOrdering checks that Rank returns at most numberOfReport pairs,
// highest score first.
func TestTopNOrdering(t *testing.T) {
	fingerprints := map[SubmissionID][]winnow.Fingerprint{
		1: {{Hash: 1}, {Hash: 2}, {Hash: 3}},
		2: {{Hash: 1}, {Hash: 2}, {Hash: 3}},
		3: {{Hash: 1}},
		4: {{Hash: 4}},
		5: {{Hash: 4}},
	}
	idx := New(fingerprints)
	ranked := Rank(idx, 10, 1, nil)
	require.Len(t, ranked, 1)
	assert.Equal(t, 3, ranked[0].Score)
}
