// Package winnow implements the Schleimer-Wilkerson-Aiken winnowing
// algorithm (SIGMOD'03): a rolling-hash, windowed-minimum selector that
// compresses a byte stream of token kinds into a sparse set of
// (hash, offset) fingerprints with the published coverage guarantee —
// every shared substring of length >= guarantee is detected in both
// streams, and no match shorter than noise is ever reported.
package winnow

import "math"

// Fingerprint is one surviving (hash, offset) pair. Offset indexes the
// position, in the kind-sequence, of the leftmost byte of the
// noise-gram whose hash is Hash.
type Fingerprint struct {
	Hash   uint64
	Offset int
}

// rollingHashes returns, for each noise-gram in kinds, the rehashed
// 64-bit Adler-32 value of that gram, in stream order.
//
// Every one of the len(kinds)-noise+1 grams is hashed: the rolling hash
// is primed with the first noise bytes, and each later gram is reached
// by removing the byte that leaves the window and appending the next.
func rollingHashes(kinds []byte, noise int) []uint64 {
	if noise <= 0 || len(kinds) < noise {
		return nil
	}

	r := newRollingAdler32()
	for i := 0; i < noise; i++ {
		r.update(kinds[i])
	}

	n := len(kinds) - noise + 1
	hashes := make([]uint64, n)
	for i := 0; i < n; i++ {
		hashes[i] = rehash64(r.sum())
		if i+noise < len(kinds) {
			r.remove(noise, kinds[i])
			r.update(kinds[i+noise])
		}
	}
	return hashes
}

// AllFingerprints returns every noise-gram hash in kinds with no
// winnowing applied. It is used exclusively to enumerate the
// fingerprints of a template, so that they can be subtracted from a
// submission's index wholesale (pair-scorer, step 1).
func AllFingerprints(kinds []byte, noise int) []Fingerprint {
	hashes := rollingHashes(kinds, noise)
	if len(hashes) == 0 {
		return nil
	}
	out := make([]Fingerprint, len(hashes))
	for i, h := range hashes {
		out[i] = Fingerprint{Hash: h, Offset: i}
	}
	return out
}

// Winnow selects a sparse subset of AllFingerprints(kinds, noise) using
// a sliding window of width w = guarantee-noise+1: at each step the
// rightmost minimum hash of the window is emitted, breaking ties toward
// later position. This is the rule that makes the coverage guarantee
// hold — any two streams sharing a substring of length >= guarantee
// will select their fingerprints for that substring at the same
// relative offset.
//
// Streams shorter than noise produce no fingerprints; this is not an
// error.
func Winnow(kinds []byte, noise, guarantee int) []Fingerprint {
	hashes := rollingHashes(kinds, noise)
	if len(hashes) == 0 {
		return nil
	}

	w := guarantee - noise + 1
	if w < 1 {
		w = 1
	}

	window := make([]uint64, w)
	for i := range window {
		window[i] = math.MaxUint64
	}

	var res []Fingerprint
	minIdx := 0
	for offset, h := range hashes {
		if h < window[minIdx] {
			slide(window, h)
			minIdx = w - 1
			res = append(res, Fingerprint{Hash: h, Offset: offset})
			continue
		}

		slide(window, h)
		if minIdx == 0 {
			minIdx = w - 1
			for i := w - 1; i >= 0; i-- {
				if window[i] < window[minIdx] {
					minIdx = i
				}
			}
			res = append(res, Fingerprint{
				Hash:   window[minIdx],
				Offset: offset - w + 1 + minIdx,
			})
		} else {
			minIdx--
		}
	}
	return res
}

// slide drops the oldest entry of window and appends h at the end, the
// array equivalent of a fixed-capacity deque's pop_front/push_back.
func slide(window []uint64, h uint64) {
	copy(window, window[1:])
	window[len(window)-1] = h
}
