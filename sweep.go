package boolop

import "sort"

// sweeper runs the Martínez-Rueda event-driven plane sweep over one arena
// of events and produces the list of events in pop order, annotated with
// InResult/PrevInResult, ready for contour assembly.
type sweeper struct {
	arena *eventArena
	queue *eventQueue
	status *statusStructure
	op    BooleanOp

	sortedEvents []*SweepEvent
}

func newSweeper(arena *eventArena, op BooleanOp, capacity int) *sweeper {
	return &sweeper{
		arena:        arena,
		queue:        newEventQueue(capacity),
		status:       newStatusStructure(),
		op:           op,
		sortedEvents: make([]*SweepEvent, 0, capacity),
	}
}

// run executes the sweep loop to completion.
func (s *sweeper) run() []*SweepEvent {
	for 0 < s.queue.Len() {
		e := s.queue.Pop()
		if e.Left {
			node := s.status.Insert(e)
			var prev, next *SweepEvent
			if p := node.Prev(); p != nil {
				prev = p.event
			}
			if n := node.Next(); n != nil {
				next = n.event
			}
			s.computeFields(e, prev)
			if next != nil {
				s.possibleIntersection(e, next)
			}
			if prev != nil && e.Kind != NonContributing {
				s.possibleIntersection(prev, e)
			}
		} else {
			other := e.Other
			node := other.statusNode
			if node == nil {
				panic(&NumericInconsistencyError{Detail: "right event's partner is not present in the status structure"})
			}
			var prev, next *SweepEvent
			if p := node.Prev(); p != nil {
				prev = p.event
			}
			if n := node.Next(); n != nil {
				next = n.event
			}
			s.status.Remove(node)
			if prev != nil && next != nil {
				s.possibleIntersection(prev, next)
			}
		}
		s.sortedEvents = append(s.sortedEvents, e)
	}
	return s.sortedEvents
}

// computeFields sets in_out, other_in_out, prev_in_result and in_result on
// the left event e given its predecessor prev in the status structure.
func (s *sweeper) computeFields(e, prev *SweepEvent) {
	switch {
	case prev == nil:
		e.InOut = false
		e.OtherInOut = true
	case prev.Role == e.Role:
		e.InOut = !prev.InOut
		e.OtherInOut = prev.OtherInOut
	default:
		e.InOut = !prev.OtherInOut
		if prev.Vertical() {
			e.OtherInOut = !prev.InOut
		} else {
			e.OtherInOut = prev.InOut
		}
	}

	if prev == nil {
		e.PrevInResult = nil
	} else if !s.inResult(prev) || prev.Vertical() {
		e.PrevInResult = prev.PrevInResult
	} else {
		e.PrevInResult = prev
	}

	e.InResult = s.inResult(e)
}

// recomputeFields re-runs computeFields for e against its current status
// structure predecessor. Needed after possibleIntersection changes e.Kind:
// computeFields ran once at insertion time with Kind still Normal, and
// in_result depends on Kind, so a later reclassification (case 1 of
// possibleIntersection) leaves a stale InResult unless this is called.
func (s *sweeper) recomputeFields(e *SweepEvent) {
	node := e.statusNode
	if node == nil {
		return
	}
	var prev *SweepEvent
	if p := node.Prev(); p != nil {
		prev = p.event
	}
	s.computeFields(e, prev)
}

// inResult decides result membership from edge_kind and other_in_out.
func (s *sweeper) inResult(e *SweepEvent) bool {
	switch e.Kind {
	case Normal:
		switch s.op {
		case Intersection:
			return !e.OtherInOut
		case Union:
			return e.OtherInOut
		case Difference:
			return (e.Role == Subject) == e.OtherInOut
		case Xor:
			return true
		}
	case SameTransition:
		return s.op == Intersection || s.op == Union
	case DifferentTransition:
		return s.op == Difference
	case NonContributing:
		return false
	}
	return false
}

// possibleIntersection intersects the segments of left events le1 and le2,
// splitting one or both at the result, and returns the number of
// intersection points found, for diagnostics.
func (s *sweeper) possibleIntersection(le1, le2 *SweepEvent) int {
	if le1 == le2 {
		return 0
	}
	a0, a1 := le1.Point, le1.Other.Point
	b0, b1 := le2.Point, le2.Other.Point

	kind, p0, p1 := segmentIntersection(a0, a1, b0, b1)
	switch kind {
	case noIntersection:
		return 0

	case pointIntersection:
		if (p0.Equals(a0) || p0.Equals(a1)) && (p0.Equals(b0) || p0.Equals(b1)) {
			// touches only at an endpoint the two edges already share
			return 0
		}
		n := 0
		if isInterior(le1, p0) {
			s.divideSegment(le1, p0)
			n++
		}
		if isInterior(le2, p0) {
			s.divideSegment(le2, p0)
			n++
		}
		return n

	default: // overlapIntersection
		if pointsEqualSet(a0, a1, b0, b1) {
			// case 1: both segments identical
			if le1.InOut == le2.InOut {
				le1.Kind = SameTransition
			} else {
				le1.Kind = DifferentTransition
			}
			le2.Kind = NonContributing
			s.recomputeFields(le1)
			s.recomputeFields(le2)
			return 2
		}

		if shared, ok := sharedEndpoint(a0, a1, b0, b1); ok {
			// case 2: share exactly one endpoint; split the longer at the
			// shorter's non-shared endpoint
			aFar, bFar := a1, b1
			if shared.Equals(a1) {
				aFar = a0
			}
			if shared.Equals(b1) {
				bFar = b0
			}
			lenA := a0.Sub(a1).Dot(a0.Sub(a1))
			lenB := b0.Sub(b1).Dot(b0.Sub(b1))
			if lenB < lenA {
				if isInterior(le1, bFar) {
					s.divideSegment(le1, bFar)
					return 1
				}
			} else {
				if isInterior(le2, aFar) {
					s.divideSegment(le2, aFar)
					return 1
				}
			}
			return 0
		}

		// case 3: containment or partial overlap without a shared endpoint;
		// split both at the (up to two) interior overlap-boundary points.
		// The resulting middle fragment becomes an identical pair of edges
		// and is handled as case 1 the next time the two become neighbors.
		n := 0
		cur1 := le1
		for _, p := range orderByDistanceFrom(a0, p0, p1) {
			if isInterior(cur1, p) {
				_, l := s.divideSegment(cur1, p)
				cur1 = l
				n++
			}
		}
		cur2 := le2
		for _, p := range orderByDistanceFrom(b0, p0, p1) {
			if isInterior(cur2, p) {
				_, l := s.divideSegment(cur2, p)
				cur2 = l
				n++
			}
		}
		return n
	}
}

// divideSegment splits the segment of left event le at point p, strictly
// interior to it. It returns the new right event r (sharing
// le's left endpoint) and the new left event l (sharing le's original
// right endpoint); le and r now describe the left half-segment, l and the
// original partner describe the right half.
func (s *sweeper) divideSegment(le *SweepEvent, p Point) (r, l *SweepEvent) {
	originalOther := le.Other

	r = s.arena.newEvent(p, false, le.Role, le.Kind)
	l = s.arena.newEvent(p, true, le.Role, le.Kind)

	r.Other = le
	le.Other = r
	l.Other = originalOther
	originalOther.Other = l

	if queuePriority(originalOther, l) {
		// rounding would otherwise pop the right half's right endpoint
		// before its own left endpoint; swap flags to restore consistency
		l.Left, originalOther.Left = originalOther.Left, l.Left
	}

	s.queue.Push(l)
	s.queue.Push(r)
	return r, l
}

func isInterior(e *SweepEvent, p Point) bool {
	return !p.Equals(e.Point) && !p.Equals(e.Other.Point)
}

func pointsEqualSet(a0, a1, b0, b1 Point) bool {
	return (a0.Equals(b0) && a1.Equals(b1)) || (a0.Equals(b1) && a1.Equals(b0))
}

// sharedEndpoint returns the single point common to both {a0,a1} and
// {b0,b1}, and false if they share zero or (handled earlier) two points.
func sharedEndpoint(a0, a1, b0, b1 Point) (Point, bool) {
	var matches []Point
	if a0.Equals(b0) || a0.Equals(b1) {
		matches = append(matches, a0)
	}
	if a1.Equals(b0) || a1.Equals(b1) {
		matches = append(matches, a1)
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return Point{}, false
}

func orderByDistanceFrom(origin, p0, p1 Point) []Point {
	pts := []Point{p0, p1}
	sort.Slice(pts, func(i, j int) bool {
		di := origin.Sub(pts[i]).Dot(origin.Sub(pts[i]))
		dj := origin.Sub(pts[j]).Dot(origin.Sub(pts[j]))
		return di < dj
	})
	return pts
}
