// Package polyfile reads and writes the ASCII polygon file format used by
// the polyop command: a contour count, followed by one block per contour
// giving its vertex count and then that many "x y" lines.
package polyfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/boolop"
)

// Read parses a polygon from r. Trailing blank lines are ignored. Contours
// are loaded as-is; hole/outer classification is left to boolop.Compute
// or, for a polygon read outside of any Compute call, to the caller.
func Read(r io.Reader) (boolop.Polygon, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	n, err := readInt(sc, "contour count")
	if err != nil {
		return boolop.Polygon{}, err
	}

	contours := make([]boolop.Contour, 0, n)
	for i := 0; i < n; i++ {
		m, err := readInt(sc, fmt.Sprintf("vertex count for contour %d", i))
		if err != nil {
			return boolop.Polygon{}, err
		}
		points := make([]boolop.Point, 0, m)
		for j := 0; j < m; j++ {
			p, err := readPoint(sc, i, j)
			if err != nil {
				return boolop.Polygon{}, err
			}
			points = append(points, p)
		}
		contours = append(contours, boolop.NewContour(points))
	}
	if err := sc.Err(); err != nil {
		return boolop.Polygon{}, fmt.Errorf("polyfile: %w", err)
	}
	return boolop.Polygon{Contours: contours}, nil
}

func readInt(sc *bufio.Scanner, what string) (int, error) {
	line, ok := nextNonBlank(sc)
	if !ok {
		return 0, fmt.Errorf("polyfile: missing %s", what)
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("polyfile: invalid %s: %q", what, line)
	}
	if v < 0 {
		return 0, fmt.Errorf("polyfile: negative %s: %d", what, v)
	}
	return v, nil
}

func readPoint(sc *bufio.Scanner, contour, vertex int) (boolop.Point, error) {
	line, ok := nextNonBlank(sc)
	if !ok {
		return boolop.Point{}, fmt.Errorf("polyfile: missing vertex %d of contour %d", vertex, contour)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return boolop.Point{}, fmt.Errorf("polyfile: vertex %d of contour %d: expected 2 fields, got %q", vertex, contour, line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return boolop.Point{}, fmt.Errorf("polyfile: vertex %d of contour %d: invalid x %q", vertex, contour, fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return boolop.Point{}, fmt.Errorf("polyfile: vertex %d of contour %d: invalid y %q", vertex, contour, fields[1])
	}
	return boolop.Point{X: x, Y: y}, nil
}

func nextNonBlank(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// Write serializes p in the same format Read accepts.
func Write(w io.Writer, p boolop.Polygon) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(p.Contours)); err != nil {
		return err
	}
	for _, c := range p.Contours {
		if _, err := fmt.Fprintln(bw, len(c.Points)); err != nil {
			return err
		}
		for _, pt := range c.Points {
			if _, err := fmt.Fprintf(bw, "%g %g\n", pt.X, pt.Y); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
