package boolop

// PolygonRole identifies which of the two input polygons an edge belongs to.
type PolygonRole int

const (
	Subject PolygonRole = iota
	Clipping
)

func (r PolygonRole) String() string {
	if r == Subject {
		return "subject"
	}
	return "clipping"
}

// EdgeKind classifies an edge for the purposes of inResult.
type EdgeKind int

const (
	Normal EdgeKind = iota
	NonContributing
	SameTransition
	DifferentTransition
)

// BooleanOp selects the set operation Compute performs.
type BooleanOp int

const (
	Intersection BooleanOp = iota
	Union
	Difference
	Xor
)

func (op BooleanOp) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	default:
		return "unknown"
	}
}

// SweepEvent is the central runtime entity of the sweep. Two events are
// created per input edge (and per split) and mutually reference each other
// through Other. Events are owned by an eventArena for the lifetime of one
// Compute call; all other references (the priority queue, the status
// structure, Other, PrevInResult) are non-owning.
type SweepEvent struct {
	Point       Point
	Left        bool
	Other       *SweepEvent
	Role        PolygonRole
	Kind        EdgeKind

	// Left-event-only fields, set by computeFields.
	InOut        bool
	OtherInOut   bool
	PrevInResult *SweepEvent
	InResult     bool

	// statusNode is a back-pointer to this event's current status-tree node,
	// for O(1) neighbor lookup.
	statusNode *statusNode

	// Contour-assembly-only fields.
	pos         int
	resultInOut bool
	contourID   int
	processed   bool
}

// Vertical reports whether the edge (e, e.Other) is vertical.
func (e *SweepEvent) Vertical() bool {
	return Equal(e.Point.X, e.Other.Point.X)
}

// Line returns the oriented line through the edge's two endpoints, directed
// from the left endpoint to the right one.
func (e *SweepEvent) Line() Line {
	if e.Left {
		return Line{e.Point, e.Other.Point}
	}
	return Line{e.Other.Point, e.Point}
}

// Below reports whether point p lies below the line of the edge (e, e.Other).
func (e *SweepEvent) Below(p Point) bool {
	return e.Line().Below(p)
}

// Above reports whether point p lies above the line of the edge (e, e.Other).
func (e *SweepEvent) Above(p Point) bool {
	return e.Line().Above(p)
}

// eventArena owns every SweepEvent created during one Compute call. Events
// are heap-allocated individually (not slice-packed) so that pointers into
// the arena remain stable across append; the arena's only job is to keep
// them alive and release them together when the sweep finishes.
type eventArena struct {
	events []*SweepEvent
}

func newEventArena() *eventArena {
	return &eventArena{}
}

// newEvent allocates and stores a new event in the arena.
func (a *eventArena) newEvent(point Point, left bool, role PolygonRole, kind EdgeKind) *SweepEvent {
	e := &SweepEvent{Point: point, Left: left, Role: role, Kind: kind}
	a.events = append(a.events, e)
	return e
}

// newEdge creates the mutually-linked pair of events for one input edge,
// deciding which endpoint is left by lexicographic order with the vertical
// tie-break (smaller y is "left").
func (a *eventArena) newEdge(p0, p1 Point, role PolygonRole) (left, right *SweepEvent) {
	leftPoint, rightPoint := p0, p1
	if !p0.Less(p1) {
		leftPoint, rightPoint = p1, p0
	}
	left = a.newEvent(leftPoint, true, role, Normal)
	right = a.newEvent(rightPoint, false, role, Normal)
	left.Other = right
	right.Other = left
	return left, right
}
