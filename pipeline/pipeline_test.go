package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codematch/codematch/index"
	"github.com/codematch/codematch/internal/config"
	"github.com/codematch/codematch/tiler"
	"github.com/codematch/codematch/token"
)

func kindStream(kinds ...byte) token.Stream {
	out := make(token.Stream, len(kinds))
	for i, k := range kinds {
		out[i] = token.Token{Kind: k, Line: uint32(i + 1), Column: 1}
	}
	return out
}

func TestScorePairsSuppressesIdenticalTemplateCopies(t *testing.T) {
	cfg := config.Config{Noise: 3, Guarantee: 4, CommonCutoff: 10, NumberOfReport: 10}
	template := kindStream(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	submissions := map[index.SubmissionID]token.Stream{
		1: template,
		2: template,
	}

	ranked := pipelineScore(t, template, submissions, cfg)
	for _, pair := range ranked {
		assert.Zero(t, pair.Score)
	}
}

func TestScorePairsRanksSharedContentAboveUnrelated(t *testing.T) {
	cfg := config.Config{Noise: 3, Guarantee: 4, CommonCutoff: 10, NumberOfReport: 10}
	template := kindStream(100, 101, 102)

	shared := kindStream(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	unrelated := kindStream(50, 51, 52, 53, 54, 55, 56, 57, 58, 59)

	submissions := map[index.SubmissionID]token.Stream{
		1: shared,
		2: shared,
		3: unrelated,
	}

	ranked := pipelineScore(t, template, submissions, cfg)
	require.NotEmpty(t, ranked)
	top := ranked[0]
	assert.True(t, (top.A == 1 && top.B == 2) || (top.A == 2 && top.B == 1))
}

func pipelineScore(t *testing.T, template token.Stream, submissions map[index.SubmissionID]token.Stream, cfg config.Config) []index.PairScore {
	t.Helper()
	return ScorePairs(template, submissions, cfg, nil)
}

func TestDiffPairDiscountsTemplate(t *testing.T) {
	cfg := config.Config{MinimumMatch: 4, InitialSearchLength: 4}
	template := kindStream(1, 2, 3, 4)
	left := kindStream(1, 2, 3, 4, 9, 9, 9, 9)
	right := kindStream(1, 2, 3, 4, 9, 9, 9, 9)

	// Without discounting, the whole 8-token stream ties as one match.
	noDiscount, reported := DiffPair(left, right, nil, cfg)
	require.True(t, reported)
	require.Len(t, noDiscount, 1)
	assert.Equal(t, uint32(1), noDiscount[0].LeftFrom)
	assert.Equal(t, uint32(8), noDiscount[0].LeftTo)

	// Discounting the shared 4-token template prefix leaves only the
	// remaining 4-token match, starting at line 5 of the original streams
	// (SubtractTemplate drops tokens but keeps their original Line values).
	discounted, reported := DiffPair(left, right, template, cfg)
	require.True(t, reported)
	require.Len(t, discounted, 1)
	assert.Equal(t, uint32(5), discounted[0].LeftFrom)
	assert.Equal(t, uint32(8), discounted[0].LeftTo)
}

func TestDiffPairBelowThresholdIsNotReported(t *testing.T) {
	cfg := config.Config{MinimumMatch: 4, InitialSearchLength: 4, Threshold: 0.9}
	// Only half of each 8-token stream matches, so ratioLeft == ratioRight
	// == 0.5, below the 0.9 threshold on both sides.
	left := kindStream(1, 2, 3, 4, 5, 6, 7, 8)
	right := kindStream(1, 2, 3, 4, 20, 21, 22, 23)

	lines, reported := DiffPair(left, right, nil, cfg)
	assert.False(t, reported)
	assert.Nil(t, lines)
}

func TestMatchRatiosAreComputedPerSide(t *testing.T) {
	left := kindStream(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	right := kindStream(1, 2, 3, 4, 5, 6, 7, 8)

	rl, rr := MatchRatios(nil, left, right)
	assert.Zero(t, rl)
	assert.Zero(t, rr)

	matches := []tiler.Match{{PatternIndex: 0, TextIndex: 0, Length: 4}}
	rl, rr = MatchRatios(matches, left, right)
	assert.InDelta(t, 0.4, rl, 1e-9)
	assert.InDelta(t, 0.5, rr, 1e-9)
}

func TestAboveThresholdRequiresBothSides(t *testing.T) {
	// One side is fully covered, the other is only half covered: the
	// reference's dual-sided gate rejects the pair even though the
	// shorter-stream-only metric would have accepted it.
	short := kindStream(1, 2, 3, 4)
	long := kindStream(1, 2, 3, 4, 5, 6, 7, 8)
	matches := []tiler.Match{{PatternIndex: 0, TextIndex: 0, Length: 4}}

	assert.False(t, AboveThreshold(matches, short, long, 0.6))
	assert.True(t, AboveThreshold(matches, short, long, 0.4))
}
