// Package hashing provides position hashing and duplicate detection for
// suite cases.
package hashing

import (
	"github.com/lgbarn/movecheck-go/internal/chess"
)

// numPieceIndices covers every (colour, kind) pair.
const numPieceIndices = 2 * int(chess.NumKinds)

// zobristKeys holds one random key per piece index and square.
var zobristKeys = func() [numPieceIndices][chess.NumSquares]uint64 {
	var keys [numPieceIndices][chess.NumSquares]uint64
	state := uint64(0x9E3779B97F4A7C15)
	for p := range keys {
		for sq := range keys[p] {
			state, keys[p][sq] = splitMix64(state)
		}
	}
	return keys
}()

// splitMix64 advances state and returns it with the next output.
func splitMix64(state uint64) (uint64, uint64) {
	state += 0x9E3779B97F4A7C15
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return state, z ^ (z >> 31)
}

func pieceIndex(p chess.Piece) int {
	return int(p.Colour)*int(chess.NumKinds) + int(p.Kind)
}

// GenerateZobristHash hashes the placement of every piece on board.
// Identical placements always hash alike; the side to move is not part of
// a Board and is not hashed.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, pl := range board.Pieces() {
		hash ^= zobristKeys[pieceIndex(pl.Piece)][pl.Square]
	}
	return hash
}

// WeakHash is a cheap secondary hash: the sum of occupied square indices
// weighted by piece index.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for _, pl := range board.Pieces() {
		hash += uint32(pl.Square+1) * uint32(pieceIndex(pl.Piece)+1)
	}
	return hash
}

// CaseSignature identifies one position and move.
type CaseSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint32
	// Move is the move checked from the position
	Move chess.Move
}

// Signature builds the signature of move played from board.
func Signature(board *chess.Board, move chess.Move) CaseSignature {
	return CaseSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Move:     move,
	}
}

// DuplicateDetector tracks seen signatures. It is not safe for concurrent
// use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]CaseSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]CaseSignature),
	}
}

// CheckAndAdd reports whether move from board was seen before and records
// it otherwise.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, move chess.Move) bool {
	if board == nil {
		return false
	}

	sig := Signature(board, move)
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct signatures recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]CaseSignature)
	d.duplicateCount = 0
}
