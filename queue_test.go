package boolop

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestQueuePriorityByX(t *testing.T) {
	a := newEventArena()
	e1, _ := a.newEdge(Point{0, 0}, Point{5, 0}, Subject)
	e2, _ := a.newEdge(Point{3, 0}, Point{8, 0}, Subject)
	test.That(t, queuePriority(e1, e2))
	test.That(t, !queuePriority(e2, e1))
}

func TestQueuePriorityRightBeforeLeft(t *testing.T) {
	a := newEventArena()
	// left event of one edge and right event of another share a point
	_, right := a.newEdge(Point{-5, 0}, Point{0, 0}, Subject)
	left, _ := a.newEdge(Point{0, 0}, Point{5, 0}, Clipping)
	test.That(t, queuePriority(right, left))
	test.That(t, !queuePriority(left, right))
}

func TestQueuePriorityBelowFirst(t *testing.T) {
	a := newEventArena()
	// two left events sharing a left endpoint; the one going below is first
	below, _ := a.newEdge(Point{0, 0}, Point{5, -5}, Subject)
	above, _ := a.newEdge(Point{0, 0}, Point{5, 5}, Clipping)
	test.That(t, queuePriority(below, above))
	test.That(t, !queuePriority(above, below))
}

func TestQueuePriorityCollinearTieBreak(t *testing.T) {
	a := newEventArena()
	subj, _ := a.newEdge(Point{0, 0}, Point{5, 0}, Subject)
	clip, _ := a.newEdge(Point{0, 0}, Point{5, 0}, Clipping)
	test.That(t, queuePriority(clip, subj))
	test.That(t, !queuePriority(subj, clip))
}

func TestEventQueueHeapOrder(t *testing.T) {
	a := newEventArena()
	q := newEventQueue(8)
	xs := []float64{5, 1, 9, 3, 7, 0, 8, 2}
	for _, x := range xs {
		left, _ := a.newEdge(Point{x, 0}, Point{x + 1, 0}, Subject)
		q.Push(left)
	}
	var got []float64
	for 0 < q.Len() {
		got = append(got, q.Pop().Point.X)
	}
	want := []float64{0, 1, 2, 3, 5, 7, 8, 9}
	test.T(t, got, want)
}
