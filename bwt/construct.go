package bwt

import "golang.org/x/exp/slices"

// Construct builds the Burrows-Wheeler transform of text+end by sorting
// the n rotations of the terminated text and reading off the last column
// of each. New calls Construct twice, once over the text and once over
// its reverse, to build the forward and reverse sides of an Index; end
// must compare less than every byte of text for the rotations to sort
// correctly, which is why New rejects any text byte equal to or below
// the sentinel.
//
// This is a naive O(n^2 log n) suffix sort, adequate for the text sizes
// slt is built to index; it is not a linear-time construction such as
// SA-IS or DC3.
func Construct(text []byte, end byte) (transform []byte, suffixArray []int) {
	terminated := make([]byte, len(text)+1)
	copy(terminated, text)
	terminated[len(text)] = end
	n := len(terminated)

	rotationStart := make([]int, n)
	for i := range rotationStart {
		rotationStart[i] = i
	}

	slices.SortFunc(rotationStart, func(a, b int) bool {
		return lessRotation(terminated, a, b)
	})

	transform = make([]byte, n)
	suffixArray = make([]int, n)
	for row, start := range rotationStart {
		transform[row] = terminated[(start+n-1)%n]
		suffixArray[row] = start
	}
	return transform, suffixArray
}

// lessRotation compares the rotations of s starting at a and at b,
// treating s as cyclic. Because s ends with the unique sentinel end,
// no two distinct rotations are ever equal, so this defines a strict
// total order.
func lessRotation(s []byte, a, b int) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		ca := s[(a+i)%n]
		cb := s[(b+i)%n]
		if ca != cb {
			return ca < cb
		}
	}
	return false
}
