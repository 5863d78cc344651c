// Package index builds a per-file fingerprint index across submissions
// and scores unordered submission pairs by shared, non-template,
// non-common fingerprint count.
package index

import (
	"github.com/tidwall/btree"

	"github.com/codematch/codematch/winnow"
)

// SubmissionID identifies one student's submission of one file.
type SubmissionID int

// posting is one occurrence of a fingerprint hash within one submission.
type posting struct {
	submission SubmissionID
	offset     int
}

// Index maps fingerprint hash to every submission (and offset) in which
// it occurs. It is built fresh per source file, across every submission
// of that file.
type Index struct {
	buckets btree.Map[uint64, []posting]
}

// New builds an Index from a set of submission fingerprint sets, keyed
// by SubmissionID.
func New(fingerprints map[SubmissionID][]winnow.Fingerprint) *Index {
	idx := &Index{}
	for sub, fps := range fingerprints {
		for _, fp := range fps {
			idx.insert(fp.Hash, sub, fp.Offset)
		}
	}
	return idx
}

func (idx *Index) insert(hash uint64, sub SubmissionID, offset int) {
	existing, _ := idx.buckets.Get(hash)
	idx.buckets.Set(hash, append(existing, posting{submission: sub, offset: offset}))
}

// SuppressTemplate deletes every bucket whose hash appears in the
// template's fingerprint set. template should be computed with
// winnow.AllFingerprints so that every noise-gram of the template, not
// just its winnowed subset, is covered.
func (idx *Index) SuppressTemplate(template []winnow.Fingerprint) {
	for _, fp := range template {
		idx.buckets.Delete(fp.Hash)
	}
}

// Len returns the number of distinct fingerprint hashes currently
// indexed.
func (idx *Index) Len() int {
	return idx.buckets.Len()
}

// walk calls fn for every (hash, postings) pair currently indexed, in
// ascending hash order (the underlying btree's natural iteration order).
func (idx *Index) walk(fn func(hash uint64, entries []posting)) {
	iter := idx.buckets.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		fn(iter.Key(), iter.Value())
	}
}
