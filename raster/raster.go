// Package raster rasterizes boolop polygons to an alpha mask by feeding a
// golang.org/x/image/vector rasterizer one MoveTo/LineTo per contour and
// letting it resolve winding.
package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/tdewolff/boolop"
)

// Rasterize draws p into a w x h alpha mask at the given scale (device
// pixels per polygon unit), with the polygon's bounding-box minimum mapped
// to the mask's bottom-left corner (0, h).
func Rasterize(p boolop.Polygon, w, h int, scale float64) *image.Alpha {
	ras := vector.NewRasterizer(w, h)
	origin := p.Bounds()
	if origin.Empty() {
		origin = boolop.Rect{}
	}

	for _, c := range p.Contours {
		if len(c.Points) == 0 {
			continue
		}
		x0, y0 := toDevice(c.Points[0], origin, scale, h)
		ras.MoveTo(x0, y0)
		for _, pt := range c.Points[1:] {
			x, y := toDevice(pt, origin, scale, h)
			ras.LineTo(x, y)
		}
		ras.ClosePath()
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

// toDevice maps a polygon point to device pixel coordinates, flipping y so
// that increasing polygon y moves up the image, matching the orientation
// convention used elsewhere in this module.
func toDevice(p boolop.Point, origin boolop.Rect, scale float64, h int) (x, y float32) {
	x = float32((p.X - origin.X0) * scale)
	y = float32(float64(h) - (p.Y-origin.Y0)*scale)
	return x, y
}
