// Command polyop is a reference driver for the boolop core: it reads two
// ASCII polygon files and prints the result of one boolean operation
// applied to them, in the same file format.
package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tdewolff/boolop"
	"github.com/tdewolff/boolop/polyfile"
)

type polyopCmd struct {
	Subject  string `index:"0" desc:"subject polygon file"`
	Clipping string `index:"1" desc:"clipping polygon file"`
	Op       string `index:"2" desc:"operation: I(ntersection), U(nion), D(ifference) or X(or)"`
}

func main() {
	root := argp.NewCmd(&polyopCmd{}, "Boolean operations on ASCII polygon files")
	root.Parse()
}

func (cmd *polyopCmd) Run() error {
	if cmd.Subject == "" || cmd.Clipping == "" || cmd.Op == "" {
		fmt.Fprintln(os.Stderr, "usage: polyop subject-file clipping-file I|U|D|X")
		os.Exit(1)
	}

	op, ok := parseOp(cmd.Op)
	if !ok {
		fmt.Fprintf(os.Stderr, "polyop: unknown operation %q (want I, U, D or X)\n", cmd.Op)
		os.Exit(2)
	}

	subject, err := loadPolygon(cmd.Subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyop:", err)
		os.Exit(3)
	}
	clipping, err := loadPolygon(cmd.Clipping)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyop:", err)
		os.Exit(3)
	}

	result, err := boolop.Compute(subject, clipping, op)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polyop:", err)
		os.Exit(3)
	}

	if err := polyfile.Write(os.Stdout, result); err != nil {
		fmt.Fprintln(os.Stderr, "polyop:", err)
		os.Exit(3)
	}
	return nil
}

var upper = cases.Upper(language.Und)

func parseOp(s string) (boolop.BooleanOp, bool) {
	switch upper.String(s) {
	case "I":
		return boolop.Intersection, true
	case "U":
		return boolop.Union, true
	case "D":
		return boolop.Difference, true
	case "X":
		return boolop.Xor, true
	}
	return 0, false
}

func loadPolygon(path string) (boolop.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return boolop.Polygon{}, err
	}
	defer f.Close()
	return polyfile.Read(f)
}
