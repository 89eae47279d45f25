package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/crucible/gridgraph"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		rows, cols int
		text       string
	}{
		{"Plain", "123\n456\n", 2, 3, "123\n456"},
		{"NoTrailingNewline", "12\n34", 2, 2, "12\n34"},
		{"CRLF", "12\r\n34\r\n", 2, 2, "12\n34"},
		{"SurroundingBlankLines", "\n\n09\n90\n\n\n", 2, 2, "09\n90"},
		{"SingleCell", "7", 1, 1, "7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.ParseString(tc.in)
			if err != nil {
				t.Fatalf("ParseString error: %v", err)
			}
			if r, c := g.Dimensions(); r != tc.rows || c != tc.cols {
				t.Errorf("Dimensions() = (%d,%d); want (%d,%d)", r, c, tc.rows, tc.cols)
			}
			if got := g.String(); got != tc.text {
				t.Errorf("String() = %q; want %q", got, tc.text)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		msg  string
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid, ""},
		{"OnlyBlank", "\n \n", gridgraph.ErrEmptyGrid, ""},
		{"Ragged", "123\n45\n", gridgraph.ErrNonRectangular, "line 2"},
		{"GapBetweenRows", "12\n\n34\n", gridgraph.ErrNonRectangular, "line 3"},
		{"Letter", "12\n3x\n", gridgraph.ErrInvalidDigit, "line 2 column 2"},
		{"Space", "1 2\n", gridgraph.ErrInvalidDigit, "column 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse error = %v; want %v", err, tc.err)
			}
			if tc.msg != "" && !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParse_ReaderError(t *testing.T) {
	_, err := gridgraph.Parse(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Parse(failingReader) error = %v; want wrapped boom", err)
	}
}
