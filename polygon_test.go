package boolop

import (
	"testing"

	"github.com/tdewolff/test"
)

func square(x0, y0, x1, y1 float64) Contour {
	return NewContour([]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
}

func TestContourCCW(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	test.That(t, ccw.CCW())
	cw := ccw.Reversed()
	test.That(t, !cw.CCW())
}

func TestContourReversedRoundtrip(t *testing.T) {
	c := square(0, 0, 10, 10)
	test.T(t, c.Reversed().Reversed().Points, c.Points)
}

func TestContourBounds(t *testing.T) {
	c := square(1, 2, 3, 4)
	test.T(t, c.Bounds(), Rect{1, 2, 3, 4})
}

func TestContourSimple(t *testing.T) {
	test.That(t, square(0, 0, 1, 1).Simple())
	test.That(t, !NewContour([]Point{{0, 0}, {1, 1}}).Simple())
	test.That(t, !NewContour([]Point{{0, 0}, {0, 0}, {1, 1}}).Simple())
}

func TestPolygonBounds(t *testing.T) {
	p := Polygon{Contours: []Contour{square(0, 0, 1, 1), square(5, 5, 6, 6)}}
	test.T(t, p.Bounds(), Rect{0, 0, 6, 6})
}

func TestPolygonAppend(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(2, 2, 4, 4)
	hole.Parent = 0
	outer.Children = []int{1}
	p := Polygon{Contours: []Contour{outer, hole}}

	q := Polygon{Contours: []Contour{square(20, 20, 21, 21)}}

	r := p.Append(q)
	test.T(t, len(r.Contours), 3)
	test.T(t, r.Contours[1].Parent, 0)
	test.T(t, r.Contours[0].Children, []int{1})
	test.T(t, r.Contours[2].Parent, -1)
}

func TestPolygonEmpty(t *testing.T) {
	test.That(t, Polygon{}.Empty())
	test.That(t, !Polygon{Contours: []Contour{square(0, 0, 1, 1)}}.Empty())
}
