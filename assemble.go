package boolop

import "sort"

// assembleContours turns the sweep's InResult edges into the output polygon.
// events is the full pop-order list produced by sweeper.run; only left
// events with InResult set (and their partners) contribute an edge to the
// output.
func assembleContours(events []*SweepEvent) Polygon {
	var resultEvents []*SweepEvent
	for _, e := range events {
		if e.Left && e.InResult {
			resultEvents = append(resultEvents, e, e.Other)
		}
	}
	if len(resultEvents) == 0 {
		return Polygon{}
	}

	sort.SliceStable(resultEvents, func(i, j int) bool {
		return queuePriority(resultEvents[i], resultEvents[j])
	})
	for i, e := range resultEvents {
		e.pos = i
	}

	type build struct {
		points     []Point
		source     *SweepEvent
		isExternal bool
		parent     int
		depth      int
	}
	var builds []build

	processed := make([]bool, len(resultEvents))
	for i := range resultEvents {
		if processed[i] {
			continue
		}
		contourID := len(builds)
		source := resultEvents[i]
		if !source.Left {
			source = source.Other
		}

		var points []Point
		points = append(points, resultEvents[i].Point)
		pos := i
		for {
			e := resultEvents[pos]
			processed[pos] = true
			if e.Left {
				e.resultInOut = false
				e.contourID = contourID
			} else {
				e.Other.resultInOut = true
				e.Other.contourID = contourID
			}
			pos = e.Other.pos
			processed[pos] = true
			points = append(points, resultEvents[pos].Point)
			pos = nextPos(pos, resultEvents, processed)
			if pos < 0 {
				break
			}
		}
		if 1 < len(points) && points[len(points)-1].Equals(points[0]) {
			points = points[:len(points)-1]
		}
		builds = append(builds, build{points: points, source: source})
	}

	// Depth and parent are derived from prevInResult.resultInOut, not from
	// the lower contour's isExternal flag alone: two disjoint exteriors
	// stacked in y share a lower contour that is itself external, but
	// resultInOut (true: same depth, false: one level deeper) is what
	// actually distinguishes that case from a genuine hole.
	for id := range builds {
		e := builds[id].source
		if e.PrevInResult == nil {
			builds[id].isExternal = true
			builds[id].parent = -1
			continue
		}
		lowerID := e.PrevInResult.contourID
		if !e.PrevInResult.resultInOut {
			builds[id].depth = builds[lowerID].depth + 1
		} else {
			builds[id].depth = builds[lowerID].depth
		}
		builds[id].isExternal = builds[id].depth%2 == 0
		switch {
		case builds[id].isExternal:
			builds[id].parent = -1
		case !e.PrevInResult.resultInOut:
			builds[id].parent = lowerID
		default:
			builds[id].parent = builds[lowerID].parent
		}
	}

	contours := make([]Contour, len(builds))
	for id, b := range builds {
		c := NewContour(b.points)
		c.Parent = b.parent
		if b.isExternal && !c.CCW() {
			c = c.Reversed()
			c.Parent = b.parent
		} else if !b.isExternal && c.CCW() {
			c = c.Reversed()
			c.Parent = b.parent
		}
		contours[id] = c
	}
	for id, c := range contours {
		if c.Parent < 0 {
			continue
		}
		contours[c.Parent].Children = append(contours[c.Parent].Children, id)
	}

	return Polygon{Contours: contours}
}

// nextPos finds the next unprocessed event sharing resultEvents[pos]'s
// point, scanning outward in both directions, or -1 if the contour begun
// at pos is complete.
func nextPos(pos int, events []*SweepEvent, processed []bool) int {
	p := events[pos].Point
	for i := pos + 1; i < len(events) && events[i].Point.Equals(p); i++ {
		if !processed[i] {
			return i
		}
	}
	for i := pos - 1; 0 <= i && events[i].Point.Equals(p); i-- {
		if !processed[i] {
			return i
		}
	}
	return -1
}
