package viewport

import "testing"

func TestRedrawQueueCoalesces(t *testing.T) {
	var q RedrawQueue
	if q.Flush(func() { t.Error("draw without request") }) {
		t.Error("Flush reported a draw on an empty queue")
	}

	for i := 0; i < 5; i++ {
		q.RequestRedraw()
	}
	if !q.Pending() || q.Requests() != 5 {
		t.Fatalf("Pending() = %v, Requests() = %d", q.Pending(), q.Requests())
	}

	draws := 0
	if !q.Flush(func() { draws++ }) {
		t.Error("Flush did not draw")
	}
	q.Flush(func() { draws++ })
	if draws != 1 {
		t.Errorf("draws = %d, want 1", draws)
	}
	if q.Pending() || q.Requests() != 0 {
		t.Error("queue not reset after flush")
	}
}

func TestRedrawFunc(t *testing.T) {
	n := 0
	var r Redrawer = RedrawFunc(func() { n++ })
	r.RequestRedraw()
	r.RequestRedraw()
	if n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}
