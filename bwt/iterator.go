package bwt

// FastaSeparator is the byte the cmd/slt_to_dot driver inserts between
// FASTA records before indexing. It is only meaningful to the iterator
// through StopAtDollars: nothing in this package treats it specially
// otherwise.
const FastaSeparator byte = '$'

// StackFrame is one pending node of the suffix-link-tree walk: the
// interval pair of the substring it represents, its depth in the tree,
// the byte labeling the arc from its parent, and the id it was assigned
// when pushed (0 for the root, which has no parent arc).
type StackFrame struct {
	Intervals IntervalPair
	Depth     int
	Extension byte
	NodeID    int
}

// Edge is a parent -> child arc of the suffix link tree, discovered
// while expanding a node's right-maximal children. ParentLabel and
// ChildLabel are only populated when the owning Iterator was built with
// debugMode true.
type Edge struct {
	ParentID, ChildID       int
	ParentLabel, ChildLabel []byte
	Symbol                  byte
}

// Iterator performs an explicit-stack depth-first walk of the internal
// nodes of the implicit suffix tree of an Index's text: the
// right-maximal substrings, equivalently the nodes of the suffix link
// tree. Children are visited in reverse alphabet order (LIFO pop of a
// stack populated in alphabet order), so edges are discovered, and
// appear in Edges after a Next call, in alphabet order.
//
// An Iterator is stateful and must not be used from more than one
// goroutine at a time.
type Iterator struct {
	idx           *Index
	debugMode     bool
	stopAtDollars bool
	nextID        int

	stack        []StackFrame
	current      StackFrame
	pathReversed []byte
	pendingEdges []Edge
}

// NewIterator returns an Iterator positioned before the root of idx's
// suffix link tree (the empty string). debugMode controls whether Edge
// values carry substring labels in addition to node ids; StopAtDollars
// can be set afterward to stop descending through FastaSeparator arcs.
func NewIterator(idx *Index, debugMode bool) *Iterator {
	root := StackFrame{
		Intervals: idx.Root(),
		Depth:     0,
		Extension: 0,
		NodeID:    0,
	}
	return &Iterator{
		idx:       idx,
		debugMode: debugMode,
		nextID:    1,
		stack:     []StackFrame{root},
		current:   root,
	}
}

// StopAtDollars reports whether the iterator stops descending past an
// arc labeled FastaSeparator instead of expanding its child further.
func (it *Iterator) StopAtDollars() bool {
	return it.stopAtDollars
}

// SetStopAtDollars sets the stop-at-separator behavior used by Next and
// NextAtDepth. The cmd/slt_to_dot driver turns this on in --fasta mode.
func (it *Iterator) SetStopAtDollars(stop bool) {
	it.stopAtDollars = stop
}

// Current returns the node the most recent successful Next or
// NextAtDepth call landed on.
func (it *Iterator) Current() StackFrame {
	return it.current
}

// Label returns the substring labeling the path from the root to
// Current, in left-to-right reading order.
func (it *Iterator) Label() []byte {
	out := make([]byte, len(it.pathReversed))
	for i, b := range it.pathReversed {
		out[len(out)-1-i] = b
	}
	return out
}

// Edges returns the tree edges discovered by the most recent Next or
// NextAtDepth call. The slice is reused by the next call and must be
// copied if it needs to outlive it.
func (it *Iterator) Edges() []Edge {
	return it.pendingEdges
}

// Next advances to the next node of the suffix link tree in depth-first
// order, pushing Current's right-maximal children (recording the arcs
// in Edges) before returning. It reports false once the whole tree has
// been visited.
func (it *Iterator) Next() bool {
	if len(it.stack) == 0 {
		return false
	}
	it.popCurrent()
	it.pendingEdges = it.pendingEdges[:0]
	it.updateLabel(it.current)
	it.pushRightMaximalChildren(it.current)
	return true
}

// NextAtDepth advances to the next node at depth k, expanding (and
// recording the arcs of) every shallower node it passes over along the
// way but not the depth-k node it stops on. It reports false once no
// node at depth k remains to be visited.
func (it *Iterator) NextAtDepth(k int) bool {
	it.pendingEdges = it.pendingEdges[:0]
	for {
		if len(it.stack) == 0 {
			return false
		}
		it.popCurrent()
		it.updateLabel(it.current)
		if it.current.Depth == k {
			return true
		}
		it.pushRightMaximalChildren(it.current)
	}
}

func (it *Iterator) popCurrent() {
	last := len(it.stack) - 1
	it.current = it.stack[last]
	it.stack = it.stack[:last]
}

// updateLabel unwinds pathReversed back to f's depth and, unless f is
// the root, appends f's arc label. pathReversed stores the path label
// back to front (the order bytes are discovered in, since each step
// prepends a byte to the conceptual substring), so Label reverses it on
// the way out.
func (it *Iterator) updateLabel(f StackFrame) {
	for len(it.pathReversed) > 0 && len(it.pathReversed) >= f.Depth {
		it.pathReversed = it.pathReversed[:len(it.pathReversed)-1]
	}
	if f.Depth > 0 {
		it.pathReversed = append(it.pathReversed, f.Extension)
	}
}

func (it *Iterator) pushRightMaximalChildren(f StackFrame) {
	localC := it.idx.ComputeLocalCForward(f.Intervals.Forward)
	for _, c := range it.idx.Alphabet() {
		if c == END {
			continue
		}
		child := it.idx.LeftExtendWithLocalC(f.Intervals, c, localC)
		if child.Forward.Size() == 0 {
			continue
		}
		if !it.idx.IsRightMaximal(child) {
			continue
		}

		childID := it.nextID
		it.nextID++

		edge := Edge{ParentID: f.NodeID, ChildID: childID, Symbol: c}
		if it.debugMode {
			edge.ParentLabel = it.Label()
			edge.ChildLabel = append([]byte{c}, edge.ParentLabel...)
		}
		it.pendingEdges = append(it.pendingEdges, edge)

		// Per the reference implementation, an arc labeled the FASTA
		// separator is still emitted (it still gets a node id) so record
		// boundaries show up in the tree; only its own subtree is
		// suppressed so distinct records don't connect through it.
		if it.stopAtDollars && c == FastaSeparator {
			continue
		}
		it.stack = append(it.stack, StackFrame{
			Intervals: child,
			Depth:     f.Depth + 1,
			Extension: c,
			NodeID:    childID,
		})
	}
}
