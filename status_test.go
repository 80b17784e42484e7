package boolop

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestStatusStructureOrdering(t *testing.T) {
	arena := newEventArena()
	ys := []float64{5, 1, 9, 3, 7, 0, 8, 2, 6, 4}
	s := newStatusStructure()
	var nodes []*statusNode
	for _, y := range ys {
		e, _ := arena.newEdge(Point{0, y}, Point{10, y}, Subject)
		nodes = append(nodes, s.Insert(e))
	}

	var got []float64
	for n := s.First(); n != nil; n = n.Next() {
		got = append(got, n.event.Point.Y)
	}
	want := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	test.T(t, got, want)

	// Prev is the inverse of Next along the whole chain.
	last := nodes[0]
	for last.Next() != nil {
		last = last.Next()
	}
	var back []float64
	for n := last; n != nil; n = n.Prev() {
		back = append(back, n.event.Point.Y)
	}
	test.T(t, back, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
}

func TestStatusStructureRemove(t *testing.T) {
	arena := newEventArena()
	s := newStatusStructure()
	e0, _ := arena.newEdge(Point{0, 0}, Point{10, 0}, Subject)
	e1, _ := arena.newEdge(Point{0, 1}, Point{10, 1}, Subject)
	e2, _ := arena.newEdge(Point{0, 2}, Point{10, 2}, Subject)

	n0 := s.Insert(e0)
	s.Insert(e1)
	n2 := s.Insert(e2)

	s.Remove(n0)

	var got []float64
	for n := s.First(); n != nil; n = n.Next() {
		got = append(got, n.event.Point.Y)
	}
	test.T(t, got, []float64{1, 2})
	test.T(t, e0.statusNode == nil, true)
	test.T(t, n2.event.Point.Y, 2.0)
}
