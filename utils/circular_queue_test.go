package utils

import "testing"

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3, nil)
	for i := 1; i <= 3; i++ {
		if dropped, err := q.Append(i); err != nil || dropped {
			t.Fatalf("append %d: unexpected dropped=%v err=%v", i, dropped, err)
		}
	}
	dropped, err := q.Append(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dropped {
		t.Fatal("expected the oldest element to be dropped")
	}
	if q.Len() != 3 || q.Cap() != 3 {
		t.Fatalf("expected len 3 cap 3, got len %d cap %d", q.Len(), q.Cap())
	}

	got := q.Drain()
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue after drain, got %d", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("expected pop on empty queue to fail")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0, nil)
	if _, err := q.Append(1); err == nil {
		t.Fatal("expected error appending to a zero-capacity queue")
	}
	if q.Drain() != nil {
		t.Fatal("expected nothing to drain")
	}
}

func TestCircularQueuePopAfterWrap(t *testing.T) {
	q := NewCircularQueue[int](2, nil)
	for i := 0; i < 5; i++ {
		_, _ = q.Append(i)
	}
	first, ok := q.Pop()
	if !ok || first != 3 {
		t.Fatalf("expected 3, got %d (ok=%v)", first, ok)
	}
	if _, _ = q.Append(5); q.Len() != 2 {
		t.Fatalf("expected 2 items after refilling, got %d", q.Len())
	}
	if got := q.Drain(); len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Fatalf("expected [4 5], got %v", got)
	}
}
