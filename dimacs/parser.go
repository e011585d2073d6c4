package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kosma-dev/mcflow/mcf"
)

var (
	problemLineRe = regexp.MustCompile(`^p\s+min\s+(\d+)\s+(\d+)\s*$`)
	nodeLineRe    = regexp.MustCompile(`^n\s+(\d+)\s+(-?\d+)\s*$`)
	arcLineRe     = regexp.MustCompile(`^a\s+(\d+)\s+(\d+)\s+(-?\d+)\s+(-?\d+)\s+(-?\d+)\s*$`)
)

// Parse reads a DIMACS "min" instance from r and returns a solver ready
// to Solve(), along with the declared node count N. Node numbers in the
// file are 1-indexed; AddDirectedEdge and AddSupply calls use the
// 0-indexed form internally, same as mcf.Solver everywhere else.
func Parse(r io.Reader) (*mcf.Solver[int64], int, error) {
	scanner := bufio.NewScanner(r)

	var solver *mcf.Solver[int64]
	numNodes, numArcs := 0, 0
	seenProblemLine := false
	arcsSeen := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue // comment or blank line
		}

		switch {
		case problemLineRe.MatchString(line):
			if seenProblemLine {
				return nil, 0, fmt.Errorf("%w: line %d: duplicate problem line", ErrInvalidFormat, lineNo)
			}
			m := problemLineRe.FindStringSubmatch(line)
			numNodes, _ = strconv.Atoi(m[1])
			numArcs, _ = strconv.Atoi(m[2])
			solver = mcf.NewSolver[int64](numNodes)
			seenProblemLine = true

		case nodeLineRe.MatchString(line):
			if solver == nil {
				return nil, 0, fmt.Errorf("%w: line %d: node line before problem line", ErrInvalidFormat, lineNo)
			}
			m := nodeLineRe.FindStringSubmatch(line)
			id, _ := strconv.Atoi(m[1])
			supply, _ := strconv.ParseInt(m[2], 10, 64)
			if id < 1 || id > numNodes {
				return nil, 0, fmt.Errorf("%w: line %d: node %d out of range [1,%d]", ErrInvalidFormat, lineNo, id, numNodes)
			}
			solver.AddSupply(id-1, supply)

		case arcLineRe.MatchString(line):
			if solver == nil {
				return nil, 0, fmt.Errorf("%w: line %d: arc line before problem line", ErrInvalidFormat, lineNo)
			}
			m := arcLineRe.FindStringSubmatch(line)
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[2])
			lower, _ := strconv.ParseInt(m[3], 10, 64)
			upper, _ := strconv.ParseInt(m[4], 10, 64)
			cost, _ := strconv.ParseInt(m[5], 10, 64)
			if from < 1 || from > numNodes || to < 1 || to > numNodes {
				return nil, 0, fmt.Errorf("%w: line %d: arc endpoint out of range [1,%d]", ErrInvalidFormat, lineNo, numNodes)
			}
			solver.AddDirectedEdge(from-1, to-1, lower, upper, cost)
			arcsSeen++

		default:
			return nil, 0, fmt.Errorf("%w: line %d: unrecognized line %q", ErrInvalidFormat, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if !seenProblemLine {
		return nil, 0, fmt.Errorf("%w: missing problem line", ErrInvalidFormat)
	}
	if arcsSeen != numArcs {
		return nil, 0, fmt.Errorf("%w: declared %d arcs, found %d", ErrInvalidFormat, numArcs, arcsSeen)
	}

	return solver, numNodes, nil
}
