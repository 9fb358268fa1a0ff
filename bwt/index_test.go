package bwt

import "testing"

func TestNewRejectsEmptyInput(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	if _, ok := err.(*ConstructionError); !ok {
		t.Fatalf("expected a *ConstructionError, got %T", err)
	}
}

func TestNewRejectsReservedBytes(t *testing.T) {
	if _, err := New([]byte{'a', 0x00, 'b'}); err == nil {
		t.Fatal("expected an error for input containing the reserved 0x00 byte")
	}
	if _, err := New([]byte{'a', END, 'b'}); err == nil {
		t.Fatal("expected an error for input containing the END sentinel")
	}
}

func TestNewAlphabetAndGlobalC(t *testing.T) {
	idx, err := New([]byte("abab"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	wantAlphabet := []byte{END, 'a', 'b'}
	gotAlphabet := idx.Alphabet()
	if len(gotAlphabet) != len(wantAlphabet) {
		t.Fatalf("Alphabet() = %v, want %v", gotAlphabet, wantAlphabet)
	}
	for i := range wantAlphabet {
		if gotAlphabet[i] != wantAlphabet[i] {
			t.Fatalf("Alphabet() = %v, want %v", gotAlphabet, wantAlphabet)
		}
	}

	c := idx.GlobalC()
	wantC := map[byte]int{END: 0, 'a': 1, 'b': 3}
	for b, want := range wantC {
		if c[b] != want {
			t.Fatalf("GlobalC()[%q] = %d, want %d", b, c[b], want)
		}
	}
}

func TestNewSizeAndLen(t *testing.T) {
	idx, err := New([]byte("mississippi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if idx.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", idx.Len())
	}
	if idx.Size() != 12 {
		t.Fatalf("Size() = %d, want 12", idx.Size())
	}
}

func TestLocalCAtFullIntervalEqualsGlobalC(t *testing.T) {
	idx, err := New([]byte("mississippi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	full := Interval{L: 0, R: idx.Size() - 1}
	local := idx.ComputeLocalCForward(full)
	global := idx.GlobalC()
	for _, c := range idx.Alphabet() {
		if local[c] != global[c] {
			t.Fatalf("local_c(full)[%q] = %d, want global C %d", c, local[c], global[c])
		}
	}
}

func TestLocalCOfEmptyIntervalIsZero(t *testing.T) {
	idx, err := New([]byte("abab"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	local := idx.ComputeLocalCForward(emptyInterval)
	for _, c := range idx.Alphabet() {
		if local[c] != 0 {
			t.Fatalf("local_c(empty)[%q] = %d, want 0", c, local[c])
		}
	}
}

func TestLeftExtendRootThenChild(t *testing.T) {
	idx, err := New([]byte("abab"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	root := idx.Root()
	afterB := idx.LeftExtend(root, 'b')
	want := IntervalPair{Forward: Interval{L: 3, R: 4}, Reverse: Interval{L: 3, R: 4}}
	if afterB != want {
		t.Fatalf("LeftExtend(root, 'b') = %+v, want %+v", afterB, want)
	}

	afterAB := idx.LeftExtend(afterB, 'a')
	want = IntervalPair{Forward: Interval{L: 1, R: 2}, Reverse: Interval{L: 3, R: 4}}
	if afterAB != want {
		t.Fatalf("LeftExtend(\"b\", 'a') = %+v, want %+v", afterAB, want)
	}
}

func TestLeftExtendWithLocalCAgreesWithLeftExtend(t *testing.T) {
	idx, err := New([]byte("mississippi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := idx.Root()
	for _, c := range idx.Alphabet() {
		viaScratch := idx.LeftExtend(root, c)
		localC := idx.ComputeLocalCForward(root.Forward)
		viaBuffer := idx.LeftExtendWithLocalC(root, c, localC)
		if viaScratch != viaBuffer {
			t.Fatalf("LeftExtend and LeftExtendWithLocalC disagree for %q: %+v != %+v", c, viaScratch, viaBuffer)
		}
	}
}

func TestExtendByImpossibleByteReturnsCanonicalEmpty(t *testing.T) {
	idx, err := New([]byte("aaaa"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := idx.LeftExtend(idx.Root(), 'z')
	if result != emptyIntervalPair {
		t.Fatalf("LeftExtend by an absent byte = %+v, want canonical empty pair", result)
	}
	if result.Forward.Size() != 0 {
		t.Fatalf("canonical empty interval pair should have size 0")
	}
}

func TestLeftThenRightExtendCommuteWithRightThenLeft(t *testing.T) {
	idx, err := New([]byte("mississippi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := idx.Root()

	leftThenRight := idx.RightExtend(idx.LeftExtend(root, 's'), 'i')
	rightThenLeft := idx.LeftExtend(idx.RightExtend(root, 'i'), 's')

	if leftThenRight != rightThenLeft {
		t.Fatalf("left-then-right and right-then-left extension disagree: %+v != %+v", leftThenRight, rightThenLeft)
	}
}

func TestBackwardStepVisitsEverySuffixExactlyOnce(t *testing.T) {
	idx, err := New([]byte("aba"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n := idx.Size()
	visited := make(map[int]bool)
	rank := 0
	for i := 0; i < n; i++ {
		if visited[rank] {
			t.Fatalf("rank %d visited twice after %d steps", rank, i)
		}
		visited[rank] = true
		rank = idx.BackwardStep(rank)
	}
	if rank != 0 {
		t.Fatalf("after Size() steps, BackwardStep should cycle back to rank 0, got %d", rank)
	}
	if len(visited) != n {
		t.Fatalf("visited %d distinct ranks, want %d", len(visited), n)
	}
}

func TestForwardStepVisitsEverySuffixExactlyOnce(t *testing.T) {
	idx, err := New([]byte("mississippi"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n := idx.Size()
	visited := make(map[int]bool)
	rank := 0
	for i := 0; i < n; i++ {
		if visited[rank] {
			t.Fatalf("rank %d visited twice after %d steps", rank, i)
		}
		visited[rank] = true
		rank = idx.ForwardStep(rank)
	}
	if rank != 0 {
		t.Fatalf("after Size() steps, ForwardStep should cycle back to rank 0, got %d", rank)
	}
}

func TestIsRightMaximalAndIsLeftMaximal(t *testing.T) {
	idx, err := New([]byte("abab"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !idx.IsRightMaximal(idx.Root()) {
		t.Fatal("the root (empty string) should be right-maximal")
	}
	if !idx.IsLeftMaximal(idx.Root()) {
		t.Fatal("the root (empty string) should be left-maximal")
	}

	afterB := idx.LeftExtend(idx.Root(), 'b')
	if !idx.IsRightMaximal(afterB) {
		t.Fatal("\"b\" should be right-maximal in \"abab\": one occurrence is followed by 'a', the other by end-of-text")
	}

	afterA := idx.LeftExtend(idx.Root(), 'a')
	if idx.IsRightMaximal(afterA) {
		t.Fatal("\"a\" should not be right-maximal in \"abab\": both occurrences are followed by 'b'")
	}
}

func TestIsLeftMaximalSingleCharacterRepeat(t *testing.T) {
	idx, err := New([]byte("aaaa"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if idx.IsLeftMaximal(idx.Root()) {
		t.Fatal("the root of a single-character-repeat text has only one possible left extension")
	}
}
