// Command slt_stats reads a suffix link tree in the (non-debug) .dot
// format produced by slt_to_dot from stdin and prints, for each node in
// id order, its depth and subtree size: "<depth> <subtree_size>".
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type edge struct {
	from, to int
}

func run(in io.Reader, out io.Writer) error {
	edges, numVertices, err := parseDigraph(in)
	if err != nil {
		return err
	}

	children := make([][]int, numVertices)
	for _, e := range edges {
		children[e.from] = append(children[e.from], e.to)
	}

	depths := make([]int, numVertices)
	subtreeSizes := make([]int, numVertices)
	if numVertices > 0 {
		computeStatistics(0, children, depths, subtreeSizes)
	}

	w := bufio.NewWriter(out)
	for i := 0; i < numVertices; i++ {
		fmt.Fprintf(w, "%d %d\n", depths[i], subtreeSizes[i])
	}
	return w.Flush()
}

// parseDigraph scans a .dot edge list of the form
// "<from> -> <to> [label=\"c\"];" and returns the edges found plus one
// past the largest vertex id seen. Lines that don't tokenize into
// exactly four whitespace-separated fields (such as the "digraph slt {"
// and "}" wrapper lines) are ignored, mirroring the original tool's
// line-oriented parser.
func parseDigraph(in io.Reader) (edges []edge, numVertices int, err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			continue
		}

		from, errFrom := strconv.Atoi(fields[0])
		to, errTo := strconv.Atoi(fields[2])
		if errFrom != nil || errTo != nil {
			continue
		}

		edges = append(edges, edge{from: from, to: to})
		if from+1 > numVertices {
			numVertices = from + 1
		}
		if to+1 > numVertices {
			numVertices = to + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return edges, numVertices, nil
}

// computeStatistics fills in depths and subtreeSizes for every node
// reachable from root via children, using an explicit stack instead of
// the recursion the original computed this with: nVertices is bounded
// by .dot file size here, not by the suffix link tree's own depth
// bound, so a deep or wide tree would otherwise risk exhausting the
// call stack.
func computeStatistics(root int, children [][]int, depths, subtreeSizes []int) {
	type frame struct {
		node     int
		depth    int
		childIdx int
	}

	stack := []frame{{node: root, depth: 0, childIdx: 0}}
	depths[root] = 0
	subtreeSizes[root] = 1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.childIdx < len(children[top.node]) {
			child := children[top.node][top.childIdx]
			top.childIdx++
			depths[child] = top.depth + 1
			subtreeSizes[child] = 1
			stack = append(stack, frame{node: child, depth: top.depth + 1, childIdx: 0})
			continue
		}

		// All children of top.node processed: fold its subtree size into
		// its parent's before popping.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			subtreeSizes[parent.node] += subtreeSizes[top.node]
		}
	}
}
