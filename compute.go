package boolop

// Compute applies the boolean operation op to the subject and clipping
// polygons and returns the result. It owns one eventArena and one sweeper
// for the duration of the call; nothing they allocate escapes Compute
// except through the returned Polygon's Points slices.
//
// Self-intersecting input contours are not detected and produce undefined
// results.
func Compute(subject, clipping Polygon, op BooleanOp) (result Polygon, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ne, ok := r.(*NumericInconsistencyError); ok {
				err = ne
				return
			}
			panic(r)
		}
	}()

	if trivial, ok := trivialResult(subject, clipping, op); ok {
		return trivial, nil
	}

	arena := newEventArena()
	capacity := 2 * (countPoints(subject) + countPoints(clipping))

	for _, c := range subject.Contours {
		if err := addContour(arena, c, Subject); err != nil {
			return Polygon{}, err
		}
	}
	for _, c := range clipping.Contours {
		if err := addContour(arena, c, Clipping); err != nil {
			return Polygon{}, err
		}
	}

	sw := newSweeper(arena, op, capacity)
	for _, e := range arena.events {
		if e.Left {
			sw.queue.Push(e)
		}
	}
	for _, e := range arena.events {
		if !e.Left {
			sw.queue.Push(e)
		}
	}

	sorted := sw.run()
	return assembleContours(sorted), nil
}

// addContour turns one input contour into mutually-linked event pairs
// owned by arena, skipping zero-length edges.
func addContour(arena *eventArena, c Contour, role PolygonRole) error {
	n := len(c.Points)
	if n < 3 {
		return &InvalidInputError{Detail: "contour has fewer than 3 points"}
	}
	for i := 0; i < n; i++ {
		p0 := c.Points[i]
		p1 := c.Points[(i+1)%n]
		if p0.Equals(p1) {
			continue
		}
		arena.newEdge(p0, p1, role)
	}
	return nil
}

func countPoints(p Polygon) int {
	n := 0
	for _, c := range p.Contours {
		n += len(c.Points)
	}
	return n
}

// trivialResult short-circuits Compute for empty inputs and for polygons
// whose bounding boxes don't overlap (union and xor then return both
// polygons' contours concatenated).
func trivialResult(subject, clipping Polygon, op BooleanOp) (Polygon, bool) {
	switch {
	case subject.Empty() && clipping.Empty():
		return Polygon{}, true
	case subject.Empty():
		switch op {
		case Union, Xor:
			return clipping, true
		default:
			return Polygon{}, true
		}
	case clipping.Empty():
		switch op {
		case Intersection:
			return Polygon{}, true
		default:
			return subject, true
		}
	}

	if !subject.Bounds().Overlaps(clipping.Bounds()) {
		switch op {
		case Intersection:
			return Polygon{}, true
		case Difference:
			return subject, true
		case Union, Xor:
			return subject.Append(clipping), true
		}
	}
	return Polygon{}, false
}
