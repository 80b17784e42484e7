package boolop

// Contour is a closed sequence of vertices. Orientation is derived, not
// stored redundantly with the points: CCW contours are outer boundaries,
// CW contours are holes.
type Contour struct {
	Points []Point

	// Parent is the index, within the owning Polygon's Contours slice, of
	// this contour's outer boundary, or -1 if this contour has no parent
	// (it is itself an outer boundary). Populated by contour assembly.
	Parent int

	// Children lists the indices of this contour's direct hole children.
	// Populated by contour assembly.
	Children []int
}

// NewContour wraps a vertex slice with no parent/children, as produced by
// an input loader that carries no hole tagging of its own.
func NewContour(points []Point) Contour {
	return Contour{Points: points, Parent: -1}
}

// CCW reports whether the contour winds counter-clockwise, via the signed
// area (shoelace) formula.
func (c Contour) CCW() bool {
	return 0 < c.signedArea()
}

func (c Contour) signedArea() float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		p := c.Points[i]
		q := c.Points[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Reversed returns a copy of c with its vertex order (and thus its
// orientation) flipped.
func (c Contour) Reversed() Contour {
	n := len(c.Points)
	r := make([]Point, n)
	for i, p := range c.Points {
		r[n-1-i] = p
	}
	return Contour{Points: r, Parent: c.Parent, Children: c.Children}
}

// Bounds returns the axis-aligned bounding box of the contour.
func (c Contour) Bounds() Rect {
	r := EmptyRect()
	for _, p := range c.Points {
		r = r.Add(p)
	}
	return r
}

// Simple reports whether the contour has at least 3 vertices and no two
// consecutive vertices (including the last and first) coincide. It does not
// check for self-intersection.
func (c Contour) Simple() bool {
	n := len(c.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if c.Points[i].Equals(c.Points[(i+1)%n]) {
			return false
		}
	}
	return true
}

// Polygon is an ordered sequence of contours: outer boundaries and holes
// together, related by the Parent/Children indices on each Contour.
type Polygon struct {
	Contours []Contour
}

// Empty reports whether the polygon has no contours.
func (p Polygon) Empty() bool {
	return len(p.Contours) == 0
}

// Bounds returns the union of all contour bounding boxes.
func (p Polygon) Bounds() Rect {
	r := EmptyRect()
	for _, c := range p.Contours {
		r = r.Union(c.Bounds())
	}
	return r
}

// Append returns a new Polygon with q's contours appended after p's,
// re-indexing q's Parent/Children references to account for the offset.
// Used by Compute's disjoint-bounding-box trivial case.
func (p Polygon) Append(q Polygon) Polygon {
	offset := len(p.Contours)
	r := Polygon{Contours: make([]Contour, 0, len(p.Contours)+len(q.Contours))}
	r.Contours = append(r.Contours, p.Contours...)
	for _, c := range q.Contours {
		shifted := c
		if c.Parent != -1 {
			shifted.Parent = c.Parent + offset
		}
		if len(c.Children) != 0 {
			shifted.Children = make([]int, len(c.Children))
			for i, ci := range c.Children {
				shifted.Children[i] = ci + offset
			}
		}
		r.Contours = append(r.Contours, shifted)
	}
	return r
}
