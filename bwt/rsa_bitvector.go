package bwt

import "math/bits"

// wordsPerBlock controls the granularity of the Jacobson rank structure:
// one cumulative rank is stored every wordsPerBlock words, and a popcount
// over at most wordsPerBlock words finishes the query.
const wordsPerBlock = 4

// rsaBitVector answers Rank/Select/Access queries (Rank, Select, Access)
// over an immutable bitvector in O(1) rank / O(1) select (via a direct
// position index) / O(1) access, at the cost of O(n) extra memory for the
// select maps. This trades the asymptotically smaller "Clark's select"
// structure the teacher's TODO comments point at for something simple and
// easy to verify; the spec only requires any correct rank dictionary (see
// bwt/wavelet.go).
type rsaBitVector struct {
	bv            bitvector
	blockRank     []int // cumulative ones-rank at the start of each block, one entry per block
	totalOnesRank int
	onePositions  []int // onePositions[r] = index of the bit with one-rank r
	zeroPositions []int
}

func newRSABitVector(bv bitvector) rsaBitVector {
	numBlocks := (bv.numWords() + wordsPerBlock - 1) / wordsPerBlock
	if numBlocks == 0 {
		numBlocks = 1
	}
	blockRank := make([]int, numBlocks)

	cumulative := 0
	for block := 0; block < numBlocks; block++ {
		blockRank[block] = cumulative
		startWord := block * wordsPerBlock
		endWord := startWord + wordsPerBlock
		if endWord > bv.numWords() {
			endWord = bv.numWords()
		}
		for w := startWord; w < endWord; w++ {
			cumulative += bits.OnesCount64(bv.getWord(w))
		}
	}

	var ones, zeros []int
	for i := 0; i < bv.len(); i++ {
		if bv.getBit(i) {
			ones = append(ones, i)
		} else {
			zeros = append(zeros, i)
		}
	}

	return rsaBitVector{
		bv:            bv,
		blockRank:     blockRank,
		totalOnesRank: len(ones),
		onePositions:  ones,
		zeroPositions: zeros,
	}
}

// Rank returns the number of bits equal to val in positions [0, i).
func (rsa rsaBitVector) Rank(val bool, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= rsa.bv.len() {
		if val {
			return rsa.totalOnesRank
		}
		return rsa.bv.len() - rsa.totalOnesRank
	}

	wordIndex := i / wordBits
	block := wordIndex / wordsPerBlock
	onesRank := rsa.blockRank[block]

	blockStartWord := block * wordsPerBlock
	for w := blockStartWord; w < wordIndex; w++ {
		onesRank += bits.OnesCount64(rsa.bv.getWord(w))
	}

	bitOffset := uint(i % wordBits)
	if bitOffset > 0 {
		mask := (uint64(1) << bitOffset) - 1
		onesRank += bits.OnesCount64(rsa.bv.getWord(wordIndex) & mask)
	}

	if val {
		return onesRank
	}
	return i - onesRank
}

// Select returns the position of the i-th (0-indexed) bit equal to val.
func (rsa rsaBitVector) Select(val bool, rank int) (int, bool) {
	positions := rsa.zeroPositions
	if val {
		positions = rsa.onePositions
	}
	if rank < 0 || rank >= len(positions) {
		return 0, false
	}
	return positions[rank], true
}

// Access returns the bit at position i.
func (rsa rsaBitVector) Access(i int) bool {
	return rsa.bv.getBit(i)
}
