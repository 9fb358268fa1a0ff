package bwt

// Interval is an inclusive range [L, R] over the positions of a BWT of
// length n. A size-zero interval is always represented in the canonical
// form returned by a failed extension: L=-1, R=-2.
type Interval struct {
	L, R int
}

// emptyInterval is the canonical representation of a zero-size interval,
// returned whenever an extension is not possible.
var emptyInterval = Interval{L: -1, R: -2}

// Size returns r-l+1, or 0 for any interval with l > r (not just the
// canonical empty interval).
func (iv Interval) Size() int {
	if iv.R < iv.L {
		return 0
	}
	return iv.R - iv.L + 1
}

// IntervalPair is a pair (F, R) where F is the lexicographic interval of
// a substring w of the text in the forward BWT, and R is the
// colexicographic interval of w in the reverse-text BWT (equivalently,
// the lexicographic interval of reverse(w)). The invariant |F| = |R|
// holds for every interval pair reachable from the root by extension.
type IntervalPair struct {
	Forward Interval
	Reverse Interval
}

// emptyIntervalPair is returned by left/right extension on failure.
var emptyIntervalPair = IntervalPair{Forward: emptyInterval, Reverse: emptyInterval}

// Size returns the shared size of Forward and Reverse.
func (p IntervalPair) Size() int {
	return p.Forward.Size()
}
