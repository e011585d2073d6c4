package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kosma-dev/mcflow/mcf"
)

// Write renders s back out in the DIMACS "min" grammar Parse reads,
// completing the round trip: arcs and node supplies are written with
// their original bounds and costs, so re-parsing and re-solving the
// output reproduces the same optimal cost (useful for cmd/mcfsolve's
// -dump option and for the round-trip test in parser_test.go).
func Write(w io.Writer, s *mcf.Solver[int64]) error {
	buf := bufio.NewWriter(w)

	edges := s.Edges()
	if _, err := fmt.Fprintf(buf, "p min %d %d\n", s.NumNodes(), len(edges)); err != nil {
		return err
	}

	for i := 0; i < s.NumNodes(); i++ {
		if supply := s.InitialSupply(i); supply != 0 {
			if _, err := fmt.Fprintf(buf, "n %d %d\n", i+1, supply); err != nil {
				return err
			}
		}
	}

	for _, e := range edges {
		if _, err := fmt.Fprintf(buf, "a %d %d %d %d %d\n", e.From+1, e.To+1, e.Lower, e.Upper, e.Cost); err != nil {
			return err
		}
	}

	return buf.Flush()
}
