// Package pipeline wires together the tokenizer, winnower, fingerprint
// index, pair-scorer, tiler, and line-mapper into the two end-to-end
// operations the CLI exposes: scoring every pair of submissions for one
// file, and tiling one chosen pair for rendering.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/codematch/codematch/index"
	"github.com/codematch/codematch/internal/config"
	"github.com/codematch/codematch/match"
	"github.com/codematch/codematch/reporter"
	"github.com/codematch/codematch/tiler"
	"github.com/codematch/codematch/token"
	"github.com/codematch/codematch/winnow"
)

// Submission names one student's source file to tokenize.
type Submission struct {
	ID   index.SubmissionID
	Path string
}

// TokenizeAll runs tok.TokenizeString over every submission concurrently,
// bounded by a semaphore sized to the host's CPU count, and returns only
// the submissions that parsed cleanly. Parse failures are reported
// through h and otherwise skipped: never fatal to the batch.
func TokenizeAll(ctx context.Context, tok token.Tokenizer, subs []Submission, readFile func(path string) (string, error), h *reporter.Handler) (map[index.SubmissionID]token.Stream, error) {
	par := runtime.GOMAXPROCS(-1)
	if par > runtime.NumCPU() {
		par = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(par))

	streams := make(map[index.SubmissionID]token.Stream, len(subs))
	var mu sync.Mutex
	group, gctx := errgroup.WithContext(ctx)

	for _, sub := range subs {
		sub := sub
		group.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			content, err := readFile(sub.Path)
			if err != nil {
				h.HandleWarning(reporter.Position{Path: sub.Path}, fmt.Errorf("read: %w", err))
				return nil
			}

			stream, err := tok.TokenizeString(gctx, sub.Path, content)
			if err != nil {
				h.HandleWarning(reporter.Position{Path: sub.Path}, fmt.Errorf("tokenize: %w", err))
				return nil
			}

			mu.Lock()
			streams[sub.ID] = stream
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return streams, nil
}

// ScorePairs runs the pair-scorer for one file: every submission's
// TokenStream is winnowed, indexed, suppressed against the template's
// full fingerprint set, and ranked.
func ScorePairs(template token.Stream, submissions map[index.SubmissionID]token.Stream, cfg config.Config, referenceSet index.ReferenceSet) []index.PairScore {
	templateFp := winnow.AllFingerprints(template.Kinds(), cfg.Noise)

	fingerprints := make(map[index.SubmissionID][]winnow.Fingerprint, len(submissions))
	for id, stream := range submissions {
		fingerprints[id] = winnow.Winnow(stream.Kinds(), cfg.Noise, cfg.Guarantee)
	}

	idx := index.New(fingerprints)
	idx.SuppressTemplate(templateFp)

	return index.Rank(idx, cfg.CommonCutoff, cfg.NumberOfReport, referenceSet)
}

// DiffPair runs the tiler and line-mapper on one chosen pair of token
// streams, first discounting template content from both sides (template
// may be nil to skip discounting). reported mirrors the reference's
// dual-sided threshold gate (see AboveThreshold): lines is nil and
// reported is false when the pair isn't worth a human's attention, even
// if the tiler found matches.
func DiffPair(left, right, template token.Stream, cfg config.Config) (lines []match.LineMatch, reported bool) {
	if template != nil {
		left = match.SubtractTemplate(left, template, cfg.MinimumMatch, cfg.InitialSearchLength)
		right = match.SubtractTemplate(right, template, cfg.MinimumMatch, cfg.InitialSearchLength)
	}

	matches := tiler.Run(left.Kinds(), right.Kinds(), cfg.MinimumMatch, cfg.InitialSearchLength)
	if !AboveThreshold(matches, left, right, cfg.Threshold) {
		return nil, false
	}
	return match.FromTokenMatches(matches, left, right), true
}

// MatchRatios returns the fraction of each stream's tokens covered by
// matches, reported separately per side: ratioLeft = matchedTokens /
// len(left), ratioRight = matchedTokens / len(right). Matches are
// disjoint token ranges of equal length on both sides, so a single
// summed matchedTokens count divides cleanly into each side's own
// length.
func MatchRatios(matches []tiler.Match, left, right token.Stream) (ratioLeft, ratioRight float64) {
	if len(left) == 0 || len(right) == 0 {
		return 0, 0
	}
	var matchedTokens int
	for _, m := range matches {
		matchedTokens += m.Length
	}
	return float64(matchedTokens) / float64(len(left)), float64(matchedTokens) / float64(len(right))
}

// AboveThreshold reports whether a pair is worth a human's attention:
// both ratioLeft and ratioRight must exceed threshold, the same
// dual-sided gate the reference implementation applies
// (ratio_left > threshold && ratio_right > threshold) before rendering
// a pair, rather than a single ratio over the shorter stream.
func AboveThreshold(matches []tiler.Match, left, right token.Stream, threshold float64) bool {
	ratioLeft, ratioRight := MatchRatios(matches, left, right)
	return ratioLeft > threshold && ratioRight > threshold
}

