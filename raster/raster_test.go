package raster

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/tdewolff/boolop"
)

func TestRasterizeFillsInterior(t *testing.T) {
	p := boolop.Polygon{Contours: []boolop.Contour{
		boolop.NewContour([]boolop.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}),
	}}
	img := Rasterize(p, 20, 20, 1.0)
	test.T(t, img.Bounds().Dx(), 20)
	test.T(t, img.Bounds().Dy(), 20)

	center := img.AlphaAt(5, 15).A
	corner := img.AlphaAt(1, 1).A
	test.That(t, 0 < center)
	test.T(t, corner, uint8(0))
}

func TestRasterizeEmptyPolygon(t *testing.T) {
	img := Rasterize(boolop.Polygon{}, 4, 4, 1.0)
	test.T(t, img.Bounds().Dx(), 4)
}
