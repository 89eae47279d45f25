package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a grid of single-digit costs: one row per line, one cell per
// character. Trailing carriage returns are stripped and blank lines before
// the first row or after the last row are ignored; a blank line between
// rows is reported as ErrNonRectangular.
//
// Errors:
//   - ErrInvalidDigit:   a non-digit character (wrapped with line and column).
//   - ErrNonRectangular: a row whose length differs from the first row.
//   - ErrEmptyGrid:      no rows at all.
//   - any error returned by r.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		rows    int
		cols    = -1
		costs   []int
		pending int // blank lines seen since the last row
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if rows > 0 {
				pending++
			}
			continue
		}
		if pending > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, lineNo)
		}
		if cols < 0 {
			cols = len(line)
		} else if len(line) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, lineNo, len(line), cols)
		}
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrInvalidDigit, lineNo, i+1, ch)
			}
			costs = append(costs, int(ch-'0'))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, costs: costs}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
