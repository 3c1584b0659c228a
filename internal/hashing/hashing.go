// Package hashing fingerprints positions for repetition detection.
package hashing

import (
	"github.com/VeeDeltaVee/knight-witch/internal/chess"
)

// hashSeed fixes the key streams so hashes are reproducible across
// runs and processes.
const hashSeed = 0x98F107A2BEEF1234

// Feature categories keep the key streams for the position's facets
// disjoint.
const (
	pieceFeature uint64 = iota + 1
	enPassantFeature
	castlingFeature
	sideFeature
)

// prng is the xorshift64* generator behind every key.
type prng struct {
	state uint64
}

func (g *prng) next() uint64 {
	g.state ^= g.state >> 12
	g.state ^= g.state << 25
	g.state ^= g.state >> 27
	return g.state * 0x2545F4914F6CDD1D
}

// key derives the reproducible key for one position feature. Boards
// here have no fixed extent, so keys come from the feature tuple on
// demand rather than from pre-built square tables.
func key(feature, a, b uint64) uint64 {
	g := prng{state: hashSeed ^ feature<<56 ^ a<<28 ^ b}
	g.next()
	g.next()
	return g.next()
}

func pieceKey(piece chess.Piece, index int) uint64 {
	return key(pieceFeature, uint64(piece.Side)<<3|uint64(piece.Kind), uint64(index))
}

// Hash returns the position's fingerprint. Positions that are the same
// under the repetition rule hash the same: placement, side to move,
// castling rights, and the en-passant target all count.
func Hash(p *chess.Position) uint64 {
	var h uint64
	for i, piece := range p.Squares {
		if piece.IsEmpty() {
			continue
		}
		h ^= pieceKey(piece, i)
	}
	if p.EnPassant != nil {
		h ^= key(enPassantFeature, uint64(p.EnPassant.File), 0)
	}
	for i, right := range castlingFlags(p.Castling) {
		if right {
			h ^= key(castlingFeature, uint64(i), 0)
		}
	}
	if p.SideToMove == chess.Black {
		h ^= key(sideFeature, 0, 0)
	}
	return h
}

func castlingFlags(c chess.CastlingRights) [4]bool {
	return [4]bool{c.WhiteKingside, c.WhiteQueenside, c.BlackKingside, c.BlackQueenside}
}

// Tracker counts how often position hashes recur over a game so the
// caller can claim draws by repetition. It is not safe for concurrent
// use; see SafeTracker.
type Tracker struct {
	counts map[uint64]int
	last   uint64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[uint64]int)}
}

// Record notes one occurrence of the hash and returns how many times
// it has now been seen.
func (t *Tracker) Record(hash uint64) int {
	t.last = hash
	t.counts[hash]++
	return t.counts[hash]
}

// Count returns how many times the hash has been recorded.
func (t *Tracker) Count(hash uint64) int {
	return t.counts[hash]
}

// ThreefoldRepetition reports whether the most recently recorded hash
// has occurred at least three times.
func (t *Tracker) ThreefoldRepetition() bool {
	return t.counts[t.last] >= 3
}

// Unique returns the number of distinct hashes recorded.
func (t *Tracker) Unique() int {
	return len(t.counts)
}

// Reset forgets all recorded hashes.
func (t *Tracker) Reset() {
	t.counts = make(map[uint64]int)
	t.last = 0
}
