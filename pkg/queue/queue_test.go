package queue

import (
	"slices"
	"testing"
)

// checkInvariants walks the list and verifies size and tail bookkeeping.
func checkInvariants[T any](t *testing.T, q *Queue[T]) {
	t.Helper()
	count := 0
	var last *element[T]
	for e := q.head; e != nil; e = e.next {
		count++
		last = e
	}
	if count != q.Len() {
		t.Errorf("reachable = %d, Len = %d", count, q.Len())
	}
	if last != q.tail {
		t.Error("tail does not point at the last element")
	}
	if (q.Len() == 0) != (q.head == nil && q.tail == nil) {
		t.Errorf("empty state inconsistent: len=%d head=%v tail=%v", q.Len(), q.head, q.tail)
	}
}

func TestQueue_FIFO(t *testing.T) {
	tests := []struct {
		name    string
		ops     func(q *Queue[int]) []int
		want    []int
		wantLen int
	}{
		{
			name: "EnqueueThenDrain",
			ops: func(q *Queue[int]) []int {
				q.Enqueue(1, 2, 3)
				q.Enqueue(4)
				return q.Dequeue(10)
			},
			want:    []int{1, 2, 3, 4},
			wantLen: 0,
		},
		{
			name: "PartialDequeue",
			ops: func(q *Queue[int]) []int {
				q.Enqueue(1, 2, 3, 4, 5)
				return q.Dequeue(2)
			},
			want:    []int{1, 2},
			wantLen: 3,
		},
		{
			name: "InterleavedOperations",
			ops: func(q *Queue[int]) []int {
				q.Enqueue(1, 2)
				got := q.Dequeue(1)
				q.Enqueue(3)
				return append(got, q.Dequeue(5)...)
			},
			want:    []int{1, 2, 3},
			wantLen: 0,
		},
		{
			name: "DequeueZero",
			ops: func(q *Queue[int]) []int {
				q.Enqueue(1)
				return q.Dequeue(0)
			},
			want:    nil,
			wantLen: 1,
		},
		{
			name: "DequeueNegative",
			ops: func(q *Queue[int]) []int {
				q.Enqueue(1)
				return q.Dequeue(-3)
			},
			want:    nil,
			wantLen: 1,
		},
		{
			name:    "DequeueEmpty",
			ops:     func(q *Queue[int]) []int { return q.Dequeue(3) },
			want:    nil,
			wantLen: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[int]()
			got := tt.ops(q)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
			if q.Len() != tt.wantLen {
				t.Errorf("Len = %d, want %d", q.Len(), tt.wantLen)
			}
			checkInvariants(t, q)
		})
	}
}

func TestQueue_Reset(t *testing.T) {
	var q Queue[string]
	q.Enqueue("a", "b", "c")
	got := q.Reset()
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Reset = %v, want [a b c]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
	checkInvariants(t, &q)

	q.Enqueue("d")
	if v, ok := q.Peek(); !ok || v != "d" {
		t.Errorf("Peek = %q, %v, want d, true", v, ok)
	}
	checkInvariants(t, &q)
}

func TestQueue_Peek_Empty(t *testing.T) {
	q := New[int]()
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue should report false")
	}
}
