package bwt

import "math"

// END is the sentinel byte appended to the text (and to its reverse)
// before each BWT is built. It must compare less than every byte that
// can occur in indexed text, which is why New rejects input containing
// END, and why byte 0x00 is reserved and also rejected: it would sort
// before END and break the assumption that END is always the unique
// smallest byte of the terminated text.
const END byte = 0x01

// MaxTextLength bounds the text New will index. Interval endpoints are
// plain ints; past this length the +1-terminated rotations no longer
// fit the guarantees the package's arithmetic is written against.
const MaxTextLength = math.MaxInt32

// Index is a bidirectional BWT index over a fixed text: the forward
// wavelet tree is built over the BWT of text+END, the reverse wavelet
// tree over the BWT of reverse(text)+END. Every exported method is a
// read-only query; an *Index is safe to share across goroutines except
// through LeftExtend and RightExtend, which reuse an internal scratch
// buffer (see their doc comments).
type Index struct {
	forward  waveletTree
	reverse  waveletTree
	globalC  [256]int
	alphabet []byte
	n        int

	scratchC [256]int
}

// New builds a bidirectional BWT index over text. It fails if text is
// empty, contains the reserved byte 0x00, contains the END sentinel
// 0x01, or exceeds MaxTextLength.
func New(text []byte) (*Index, error) {
	if len(text) == 0 {
		return nil, newConstructionError("input text is empty")
	}
	if len(text) > MaxTextLength {
		return nil, newConstructionError("input text of length %d exceeds MaxTextLength %d", len(text), MaxTextLength)
	}
	for i, b := range text {
		if b == 0x00 {
			return nil, newConstructionError("input text contains reserved byte 0x00 at position %d", i)
		}
		if b == END {
			return nil, newConstructionError("input text contains reserved END byte 0x01 at position %d", i)
		}
	}

	forwardTransform, _ := Construct(text, END)

	reversedText := make([]byte, len(text))
	for i, b := range text {
		reversedText[len(text)-1-i] = b
	}
	reverseTransform, _ := Construct(reversedText, END)

	idx := &Index{
		forward:  newWaveletTree(forwardTransform),
		reverse:  newWaveletTree(reverseTransform),
		alphabet: distinctSortedBytes(forwardTransform),
		n:        len(text),
	}
	idx.globalC = idx.localCArray(idx.forward, Interval{L: 0, R: idx.forward.Len() - 1})
	return idx, nil
}

func distinctSortedBytes(s []byte) []byte {
	var present [256]bool
	for _, b := range s {
		present[b] = true
	}
	out := make([]byte, 0, 8)
	for c := 0; c < 256; c++ {
		if present[c] {
			out = append(out, byte(c))
		}
	}
	return out
}

// Size returns the length of the terminated text, i.e. Len()+1.
func (idx *Index) Size() int {
	return idx.forward.Len()
}

// Len returns the length of the original, untermianted text.
func (idx *Index) Len() int {
	return idx.n
}

// Alphabet returns the sorted distinct bytes of the terminated text,
// including END.
func (idx *Index) Alphabet() []byte {
	out := make([]byte, len(idx.alphabet))
	copy(out, idx.alphabet)
	return out
}

// GlobalC returns the global C-array: GlobalC()[c] is the number of
// bytes of the terminated text strictly lexicographically less than c.
func (idx *Index) GlobalC() [256]int {
	return idx.globalC
}

// ForwardAt returns the byte at position i of the forward BWT.
func (idx *Index) ForwardAt(i int) byte {
	return idx.forward.At(i)
}

// ReverseAt returns the byte at position i of the reverse BWT.
func (idx *Index) ReverseAt(i int) byte {
	return idx.reverse.At(i)
}

// ComputeLocalCForward computes the local C-array of iv within the
// forward BWT: for each byte c of the alphabet, result[c] is the number
// of positions in iv whose byte is strictly less than c (see
// localCArray).
func (idx *Index) ComputeLocalCForward(iv Interval) [256]int {
	return idx.localCArray(idx.forward, iv)
}

// ComputeLocalCReverse is the reverse-BWT analogue of
// ComputeLocalCForward.
func (idx *Index) ComputeLocalCReverse(iv Interval) [256]int {
	return idx.localCArray(idx.reverse, iv)
}

// localCArray computes, for each byte c in the index's alphabet, the
// number of occurrences of bytes lexicographically smaller than c
// within iv of wt. Bytes outside the alphabet are left at zero.
func (idx *Index) localCArray(wt waveletTree, iv Interval) [256]int {
	var counts [256]int
	if len(idx.alphabet) == 0 {
		return counts
	}
	if iv.Size() == 0 {
		return counts
	}
	for i := 1; i < len(idx.alphabet); i++ {
		prev := idx.alphabet[i-1]
		cur := idx.alphabet[i]
		countPrev := wt.Rank(iv.R+1, prev) - wt.Rank(iv.L, prev)
		counts[cur] = counts[prev] + countPrev
	}
	return counts
}

// LeftExtend computes the interval pair of c w, the left extension of
// w by c, given the interval pair of w. It returns the canonical empty
// interval pair if the extension is not possible.
//
// LeftExtend recomputes the local forward C-array of intervals.Forward
// on every call, caching it in a buffer owned by idx. That buffer is
// NOT THREAD SAFE: concurrent calls to LeftExtend (or RightExtend) on
// the same *Index race. Callers that extend the same interval many
// times, or that extend concurrently, should compute the local C-array
// once with ComputeLocalCForward and call LeftExtendWithLocalC instead.
func (idx *Index) LeftExtend(intervals IntervalPair, c byte) IntervalPair {
	idx.scratchC = idx.ComputeLocalCForward(intervals.Forward)
	return idx.LeftExtendWithLocalC(intervals, c, idx.scratchC)
}

// LeftExtendWithLocalC is the reentrant form of LeftExtend: it takes
// the local forward C-array of intervals.Forward as computed by
// ComputeLocalCForward, instead of recomputing (and caching) it.
func (idx *Index) LeftExtendWithLocalC(intervals IntervalPair, c byte, localC [256]int) IntervalPair {
	if intervals.Forward.Size() == 0 {
		return emptyIntervalPair
	}

	forward := intervals.Forward
	reverse := intervals.Reverse

	numCInInterval := idx.forward.Rank(forward.R+1, c) - idx.forward.Rank(forward.L, c)
	startF := idx.globalC[c] + idx.forward.Rank(forward.L, c)
	endF := startF + numCInInterval - 1
	if startF > endF {
		return emptyIntervalPair
	}

	startR := reverse.L + localC[c]
	endR := startR + (endF - startF)

	return IntervalPair{Forward: Interval{L: startF, R: endF}, Reverse: Interval{L: startR, R: endR}}
}

// RightExtend is the mirror image of LeftExtend: it computes the
// interval pair of w c given the interval pair of w. Same
// non-reentrancy caveat as LeftExtend.
func (idx *Index) RightExtend(intervals IntervalPair, c byte) IntervalPair {
	idx.scratchC = idx.ComputeLocalCReverse(intervals.Reverse)
	return idx.RightExtendWithLocalC(intervals, c, idx.scratchC)
}

// RightExtendWithLocalC is the reentrant form of RightExtend.
func (idx *Index) RightExtendWithLocalC(intervals IntervalPair, c byte, localC [256]int) IntervalPair {
	if intervals.Forward.Size() == 0 {
		return emptyIntervalPair
	}

	forward := intervals.Forward
	reverse := intervals.Reverse

	numCInInterval := idx.reverse.Rank(reverse.R+1, c) - idx.reverse.Rank(reverse.L, c)
	startR := idx.globalC[c] + idx.reverse.Rank(reverse.L, c)
	endR := startR + numCInInterval - 1
	if startR > endR {
		return emptyIntervalPair
	}

	startF := forward.L + localC[c]
	endF := startF + (endR - startR)

	return IntervalPair{Forward: Interval{L: startF, R: endF}, Reverse: Interval{L: startR, R: endR}}
}

// BackwardStep takes a backward step in the forward BWT: given the
// lexicographic rank of a suffix of length k, it returns the
// lexicographic rank of the suffix of length k+1 obtained by prepending
// the preceding text byte (or of the empty suffix, once lexRank names
// the whole terminated text).
func (idx *Index) BackwardStep(lexRank int) int {
	c := idx.forward.At(lexRank)
	return idx.globalC[c] + idx.forward.Rank(lexRank, c)
}

// ForwardStep is the reverse-BWT analogue of BackwardStep: it walks a
// colexicographic rank one byte further toward the end of the text.
func (idx *Index) ForwardStep(colexRank int) int {
	c := idx.reverse.At(colexRank)
	return idx.globalC[c] + idx.reverse.Rank(colexRank, c)
}

// IntervalSymbolsForward returns the distinct bytes occurring at the
// positions of the forward BWT covered by iv, with their rank at iv.L
// and at iv.R+1.
func (idx *Index) IntervalSymbolsForward(iv Interval) (syms []byte, ranksL, ranksR []int) {
	if iv.Size() == 0 {
		return nil, nil, nil
	}
	return idx.forward.IntervalSymbols(iv.L, iv.R+1)
}

// IntervalSymbolsReverse is the reverse-BWT analogue of
// IntervalSymbolsForward.
func (idx *Index) IntervalSymbolsReverse(iv Interval) (syms []byte, ranksL, ranksR []int) {
	if iv.Size() == 0 {
		return nil, nil, nil
	}
	return idx.reverse.IntervalSymbols(iv.L, iv.R+1)
}

// IsLeftMaximal reports whether w has more than one possible left
// extension, i.e. whether w occurs preceded by at least two distinct
// bytes (or occurs at the start of the text as well as elsewhere).
func (idx *Index) IsLeftMaximal(intervals IntervalPair) bool {
	syms, _, _ := idx.IntervalSymbolsForward(intervals.Forward)
	return len(syms) >= 2
}

// IsRightMaximal is the mirror image of IsLeftMaximal.
func (idx *Index) IsRightMaximal(intervals IntervalPair) bool {
	syms, _, _ := idx.IntervalSymbolsReverse(intervals.Reverse)
	return len(syms) >= 2
}

// Root returns the interval pair of the empty string: the full range of
// both BWTs.
func (idx *Index) Root() IntervalPair {
	return IntervalPair{
		Forward: Interval{L: 0, R: idx.forward.Len() - 1},
		Reverse: Interval{L: 0, R: idx.reverse.Len() - 1},
	}
}
