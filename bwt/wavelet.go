package bwt

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

/*

For the waveletTree's usage, read its method documentation. To
understand how it works for either curiosity or maintenance, read
below.

# Wavelet tree

The wavelet tree is the rank oracle behind both BWTs in an Index: given
an immutable byte sequence, it answers Rank(i, c) (how many times does c
occur in positions [0, i)) and IntervalSymbols(l, r) (which bytes occur
in [l, r), and at what rank at both ends) in O(log sigma) and O(k log
sigma) respectively, where sigma is the alphabet size and k the number
of distinct bytes found.

## Path encoding

Every byte in the built sequence's alphabet gets a binary path from the
tree's root to the leaf that represents it. Given the alphabet A B C D
sorted by descending frequency, a 2-bit encoding might look like:

A: 00
B: 01
C: 10
D: 11

Each internal node stores a bitvector over its slice of the sequence: a
0 means "this character's path continues left", a 1 means "continues
right". Rank at a node is answered by the node's own rank/select
dictionary (rsaBitVector); descending to the correct child and
translating the rank along the way yields Rank(i, c) at the root; the
mirror image, walked level by level without needing to touch any bit
vector once the two endpoints have propagated down to a leaf, yields
IntervalSymbols.

*/

type waveletTree struct {
	root   *wtNode
	alpha  []charInfo
	length int
}

type wtNode struct {
	data   rsaBitVector
	char   *byte
	parent *wtNode
	left   *wtNode
	right  *wtNode
}

func (n *wtNode) isLeaf() bool {
	return n.char != nil
}

type charInfo struct {
	char byte
	rank int
	path bitvector
}

// newWaveletTree builds a wavelet tree over seq. seq must be non-empty.
func newWaveletTree(seq []byte) waveletTree {
	if len(seq) == 0 {
		panic("bwt: cannot build a wavelet tree over an empty sequence")
	}

	alpha := charInfoDescByFrequency(seq)
	root := buildWaveletNode(0, alpha, seq)

	if root.isLeaf() {
		// Single-character alphabet: every position is implicitly a
		// 1-bit so Rank/Access behave consistently with the general case.
		bv := newBitVector(len(seq))
		for i := 0; i < bv.len(); i++ {
			bv.setBit(i, true)
		}
		root.data = newRSABitVector(bv)
	}

	return waveletTree{root: root, alpha: alpha, length: len(seq)}
}

// Len returns the length of the sequence the tree was built over.
func (wt waveletTree) Len() int {
	return wt.length
}

// At returns the byte at position i.
func (wt waveletTree) At(i int) byte {
	if wt.root.isLeaf() {
		return *wt.root.char
	}
	curr := wt.root
	for !curr.isLeaf() {
		bit := curr.data.Access(i)
		i = curr.data.Rank(bit, i)
		if bit {
			curr = curr.right
		} else {
			curr = curr.left
		}
	}
	return *curr.char
}

// Rank returns the number of occurrences of c in positions [0, i).
func (wt waveletTree) Rank(i int, c byte) int {
	if wt.root.isLeaf() {
		if *wt.root.char == c {
			return wt.root.data.Rank(true, i)
		}
		return 0
	}

	ci, ok := wt.lookupCharInfo(c)
	if !ok {
		return 0
	}

	curr := wt.root
	level := 0
	rank := i
	for !curr.isLeaf() {
		pathBit := ci.path.getBit(ci.path.len() - 1 - level)
		rank = curr.data.Rank(pathBit, rank)
		if pathBit {
			curr = curr.right
		} else {
			curr = curr.left
		}
		level++
	}
	return rank
}

// IntervalSymbols returns the distinct bytes occurring in positions
// [l, r) together with their rank at l and at r (order unspecified).
// It walks only the tree edges that lead to a symbol actually present in
// the interval, so it costs O(k log sigma) rather than O(sigma log
// sigma).
func (wt waveletTree) IntervalSymbols(l, r int) (syms []byte, ranksL, ranksR []int) {
	if r <= l {
		return nil, nil, nil
	}
	collectIntervalSymbols(wt.root, l, r, &syms, &ranksL, &ranksR)
	return
}

func collectIntervalSymbols(n *wtNode, l, r int, syms *[]byte, ranksL, ranksR *[]int) {
	if l >= r {
		return
	}
	if n.isLeaf() {
		*syms = append(*syms, *n.char)
		*ranksL = append(*ranksL, l)
		*ranksR = append(*ranksR, r)
		return
	}
	l0 := n.data.Rank(false, l)
	r0 := n.data.Rank(false, r)
	l1 := l - l0
	r1 := r - r0
	if n.left != nil {
		collectIntervalSymbols(n.left, l0, r0, syms, ranksL, ranksR)
	}
	if n.right != nil {
		collectIntervalSymbols(n.right, l1, r1, syms, ranksL, ranksR)
	}
}

func (wt waveletTree) lookupCharInfo(c byte) (charInfo, bool) {
	for i := range wt.alpha {
		if wt.alpha[i].char == c {
			return wt.alpha[i], true
		}
	}
	return charInfo{}, false
}

func (wt waveletTree) reconstruct() []byte {
	out := make([]byte, wt.length)
	for i := 0; i < wt.length; i++ {
		out[i] = wt.At(i)
	}
	return out
}

func buildWaveletNode(level int, alpha []charInfo, seq []byte) *wtNode {
	if len(alpha) == 1 {
		c := alpha[0].char
		return &wtNode{char: &c}
	}

	leftAlpha, rightAlpha := partitionAlphabet(level, alpha)

	var leftSeq, rightSeq []byte
	bv := newBitVector(len(seq))
	for i, b := range seq {
		if inAlphabet(rightAlpha, b) {
			bv.setBit(i, true)
			rightSeq = append(rightSeq, b)
		} else {
			leftSeq = append(leftSeq, b)
		}
	}

	node := &wtNode{data: newRSABitVector(bv)}
	if len(leftAlpha) > 0 {
		node.left = buildWaveletNode(level+1, leftAlpha, leftSeq)
		node.left.parent = node
	}
	if len(rightAlpha) > 0 {
		node.right = buildWaveletNode(level+1, rightAlpha, rightSeq)
		node.right.parent = node
	}
	return node
}

func inAlphabet(alpha []charInfo, b byte) bool {
	for _, a := range alpha {
		if a.char == b {
			return true
		}
	}
	return false
}

// partitionAlphabet splits alpha into the characters whose path bit at
// the given level is 0 (left) or 1 (right).
func partitionAlphabet(level int, alpha []charInfo) (left, right []charInfo) {
	for _, a := range alpha {
		if a.path.getBit(a.path.len() - 1 - level) {
			right = append(right, a)
		} else {
			left = append(left, a)
		}
	}
	return left, right
}

// charInfoDescByFrequency returns the distinct bytes of seq sorted by
// descending frequency (ties broken by byte value), each tagged with a
// path encoding assigned by that order: the byte at position i gets the
// treeHeight-bit binary encoding of i, so every path has the same
// length and frequency does not by itself place a byte nearer the root.
func charInfoDescByFrequency(seq []byte) []charInfo {
	counts := make(map[byte]int)
	for _, b := range seq {
		counts[b]++
	}

	infos := make([]charInfo, 0, len(counts))
	for c, n := range counts {
		infos = append(infos, charInfo{char: c, rank: n})
	}

	slices.SortFunc(infos, func(a, b charInfo) bool {
		if a.rank == b.rank {
			return a.char < b.char
		}
		return a.rank > b.rank
	})

	pathBits := treeHeight(len(infos))
	for i := range infos {
		bv := newBitVector(pathBits)
		encodePath(bv, uint64(i))
		infos[i].path = bv
	}
	return infos
}

func encodePath(bv bitvector, n uint64) {
	for shift := 0; uint64(shift) < uint64(bv.len()); shift++ {
		bit := (n>>shift)&1 == 1
		bv.setBit(bv.len()-1-shift, bit)
	}
}

func treeHeight(alphabetSize int) int {
	if alphabetSize <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(alphabetSize))))
}

func (wt waveletTree) String() string {
	return fmt.Sprintf("waveletTree{length=%d, alphabetSize=%d}", wt.length, len(wt.alpha))
}
