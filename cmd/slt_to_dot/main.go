// Command slt_to_dot builds a bidirectional BWT index over an input
// file and prints its suffix link tree to stdout in Graphviz .dot
// format: one line per edge, "parent -> child [label=\"c\"];", bracketed
// by "digraph slt {" and "}".
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jnalanko/slt/bio/fasta"
	"github.com/jnalanko/slt/bwt"
)

func main() {
	run(os.Args)
}

// run is separated from main for testability.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "slt_to_dot",
		Usage: "Prints the suffix link tree of the text in the input file to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "f",
				Usage: "input file",
			},
			&cli.BoolFlag{
				Name:  "fasta",
				Usage: "interpret the input file as FASTA, concatenating all its sequences with $ separators",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "label nodes with the substring they represent instead of a numeric id",
			},
		},
		Action: func(c *cli.Context) error {
			return runSltToDot(c.String("f"), c.Bool("fasta"), c.Bool("debug"), c.App.Writer)
		},
	}
}

func runSltToDot(filename string, fastaMode, debugMode bool, out io.Writer) error {
	if filename == "" {
		return cli.Exit("Error: missing input file", 1)
	}

	f, err := os.Open(filename)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to open file %s", filename), 1)
	}
	defer f.Close()

	var text []byte
	if fastaMode {
		text, err = concatenateFasta(f)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
	} else {
		text, err = io.ReadAll(f)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
	}

	if len(text) > bwt.MaxTextLength {
		return cli.Exit(fmt.Sprintf("Error: maximum input size is %d characters", bwt.MaxTextLength), 1)
	}

	index, err := bwt.New(text)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	writeDigraph(out, index, fastaMode, debugMode)
	return nil
}

// concatenateFasta reads every record of r and joins their (uppercased)
// sequences with a leading $ before each record and one trailing $, the
// way the original tool's parseConcatenate did: for records r1, r2 it
// produces "$r1$r2$".
func concatenateFasta(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	parser := fasta.NewParser(r, 4096)
	for {
		record, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		buf.WriteByte(bwt.FastaSeparator)
		for i := 0; i < len(record.Sequence); i++ {
			buf.WriteByte(toUpper(record.Sequence[i]))
		}
	}
	buf.WriteByte(bwt.FastaSeparator)
	return buf.Bytes(), nil
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func writeDigraph(out io.Writer, index *bwt.Index, fastaMode, debugMode bool) {
	it := bwt.NewIterator(index, debugMode)
	it.SetStopAtDollars(fastaMode)

	fmt.Fprintln(out, "digraph slt {")
	for it.Next() {
		for _, edge := range it.Edges() {
			writeEdge(out, edge, debugMode)
		}
	}
	fmt.Fprintln(out, "}")
}

func writeEdge(out io.Writer, edge bwt.Edge, debugMode bool) {
	if debugMode {
		fmt.Fprintf(out, "%s -> %s [label=\"%s\"];\n",
			dotQuote(edge.ParentLabel), dotQuote(edge.ChildLabel), dotEscapeByte(edge.Symbol))
		return
	}
	fmt.Fprintf(out, "%d -> %d [label=\"%s\"];\n", edge.ParentID, edge.ChildID, dotEscapeByte(edge.Symbol))
}

// dotQuote renders b as a double-quoted Graphviz id, escaping backslash
// and double-quote.
func dotQuote(b []byte) string {
	var sb bytes.Buffer
	sb.WriteByte('"')
	for _, c := range b {
		sb.WriteString(dotEscapeByte(c))
	}
	sb.WriteByte('"')
	return sb.String()
}

func dotEscapeByte(c byte) string {
	switch c {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	default:
		return string(c)
	}
}
