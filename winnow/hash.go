package winnow

import "github.com/cespare/xxhash/v2"

// adler32Mod is the modulus used by the Adler-32 checksum (the largest
// prime below 2^16).
const adler32Mod = 65521

// rollingAdler32 is an incremental Adler-32 accumulator that supports
// removing the byte that has just fallen out of the left edge of a
// fixed-width window, in addition to the usual append. The standard
// library's hash/adler32 only exposes the io.Writer/hash.Hash32
// interfaces, which compute a checksum over a byte stream but cannot
// undo a previously-written byte; winnowing needs exactly that to slide
// its noise-gram window in O(1) per step, so this is a small
// from-scratch rolling variant of the same checksum rather than a
// reach for a third-party dependency that does not exist in the
// examined ecosystem.
type rollingAdler32 struct {
	a, b uint32
}

func newRollingAdler32() rollingAdler32 {
	return rollingAdler32{a: 1, b: 0}
}

// update appends c to the window.
func (r *rollingAdler32) update(c byte) {
	r.a = (r.a + uint32(c)) % adler32Mod
	r.b = (r.b + r.a) % adler32Mod
}

// remove drops c, the byte that was added windowLen updates ago, from
// the window.
func (r *rollingAdler32) remove(windowLen int, c byte) {
	r.a = (r.a - uint32(c) + adler32Mod) % adler32Mod
	sub := (uint32(windowLen)*uint32(c) + 1) % adler32Mod
	r.b = (r.b + adler32Mod - sub) % adler32Mod
}

// sum returns the current 32-bit Adler-32 checksum of the window.
func (r *rollingAdler32) sum() uint32 {
	return (r.b << 16) | r.a
}

// rehash64 mixes a 32-bit Adler-32 value through a general-purpose
// 64-bit hash before it is used as a fingerprint hash. Adler-32 is a
// poor source of entropy in its low bits, so the low bits of the raw
// checksum must never be compared directly;
// xxhash64 (already exercised by other examples in the retrieval pack
// via prometheus/badger's transitive dependency tree, here promoted to
// a direct, deliberately-chosen dependency) gives good avalanche
// behavior across all 64 bits cheaply.
func rehash64(adler uint32) uint64 {
	var buf [4]byte
	buf[0] = byte(adler)
	buf[1] = byte(adler >> 8)
	buf[2] = byte(adler >> 16)
	buf[3] = byte(adler >> 24)
	return xxhash.Sum64(buf[:])
}
