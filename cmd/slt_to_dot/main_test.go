package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// runApp drives application() the way poly/commands_test.go drives its
// own cli.App: override Writer to capture stdout, build argv by hand.
func runApp(t *testing.T, args []string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := application()
	app.Writer = &out
	argv := append([]string{"slt_to_dot"}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp input file: %v", err)
	}
	return path
}

func TestRunSltToDotSingleCharacter(t *testing.T) {
	path := writeTempFile(t, "a")
	out, err := runApp(t, []string{"-f", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "digraph slt {\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunSltToDotAba(t *testing.T) {
	path := writeTempFile(t, "aba")
	out, err := runApp(t, []string{"-f", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "digraph slt {\n0 -> 1 [label=\"a\"];\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunSltToDotMississippi(t *testing.T) {
	path := writeTempFile(t, "mississippi")
	out, err := runApp(t, []string{"-f", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "digraph slt {\n" +
		"0 -> 1 [label=\"i\"];\n" +
		"0 -> 2 [label=\"p\"];\n" +
		"0 -> 3 [label=\"s\"];\n" +
		"1 -> 4 [label=\"s\"];\n" +
		"4 -> 5 [label=\"s\"];\n" +
		"5 -> 6 [label=\"i\"];\n" +
		"}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

// TestRunSltToDotMississippiGolden compares the generated .dot output
// against a captured reference fixture the way io_test.go diffs a
// built file against its golden counterpart.
func TestRunSltToDotMississippiGolden(t *testing.T) {
	path := writeTempFile(t, "mississippi")
	out, err := runApp(t, []string{"-f", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	golden, err := os.ReadFile(filepath.Join("..", "..", "testdata", "mississippi.dot"))
	if err != nil {
		t.Fatalf("reading golden fixture: %v", err)
	}

	if out == string(golden) {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(golden)),
		B:        difflib.SplitLines(out),
		FromFile: "testdata/mississippi.dot",
		ToFile:   "generated",
		Context:  3,
	}
	diffText, _ := difflib.GetUnifiedDiffString(diff)
	t.Errorf("generated .dot output does not match golden fixture:\n%s", diffText)
}

func TestRunSltToDotFastaMode(t *testing.T) {
	path := writeTempFile(t, ">x\nAC\n>y\nGT\n")
	out, err := runApp(t, []string{"-f", path, "--fasta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "digraph slt {\n0 -> 1 [label=\"$\"];\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunSltToDotDebugMode(t *testing.T) {
	path := writeTempFile(t, "aba")
	out, err := runApp(t, []string{"-f", path, "--debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "digraph slt {\n\"\" -> \"a\" [label=\"a\"];\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunSltToDotMissingFileArgument(t *testing.T) {
	_, err := runApp(t, []string{})
	if err == nil {
		t.Fatal("expected an error when -f is omitted")
	}
}

func TestRunSltToDotUnreadableFile(t *testing.T) {
	_, err := runApp(t, []string{"-f", filepath.Join(t.TempDir(), "does-not-exist.txt")})
	if err == nil {
		t.Fatal("expected an error for a nonexistent input file")
	}
}

func TestRunSltToDotUnknownFlag(t *testing.T) {
	_, err := runApp(t, []string{"--bogus"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestToUpper(t *testing.T) {
	cases := map[byte]byte{'a': 'A', 'z': 'Z', 'A': 'A', '$': '$', '1': '1'}
	for in, want := range cases {
		if got := toUpper(in); got != want {
			t.Fatalf("toUpper(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDotEscapeByte(t *testing.T) {
	cases := map[byte]string{'"': `\"`, '\\': `\\`, 'a': "a"}
	for in, want := range cases {
		if got := dotEscapeByte(in); got != want {
			t.Fatalf("dotEscapeByte(%q) = %q, want %q", in, got, want)
		}
	}
}
