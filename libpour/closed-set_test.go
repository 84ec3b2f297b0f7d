package libpour_test

import (
	"testing"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/2x3systems/go2pour/libpour"
)

func TestClosedSet(t *testing.T) {
	for _, lsm := range []bool{false, true} {
		closed := libpour.NewClosedSet(lsm)

		S := go2pour.State{
			{Capacity: 5, Occupied: 3, Color: 1},
			{Capacity: 4},
		}
		T := S.Clone()
		T[1].Occupied, T[1].Color = 2, 2

		if _, found := closed.Cost(S); found || closed.Len() != 0 {
			t.Fatalf("lsm=%v: expected an empty set", lsm)
		}

		closed.Put(S, 7)
		closed.Put(T, 3)
		closed.Put(S, 5)
		if closed.Len() != 2 {
			t.Fatalf("lsm=%v: expected 2 entries, got %d", lsm, closed.Len())
		}
		if cost, found := closed.Cost(S); !found || cost != 5 {
			t.Fatalf("lsm=%v: Cost(S) = %d, %v", lsm, cost, found)
		}

		// capacity isn't part of a state's identity
		U := T.Clone()
		U[0].Capacity = 9
		if cost, found := closed.Cost(U); !found || cost != 3 {
			t.Fatalf("lsm=%v: Cost(U) = %d, %v", lsm, cost, found)
		}

		closed.Remove(S)
		closed.Remove(S)
		if _, found := closed.Cost(S); found || closed.Len() != 1 {
			t.Fatalf("lsm=%v: Remove failed", lsm)
		}

		closed.Close()
		if closed.Len() != 0 {
			t.Fatalf("lsm=%v: Close should empty the set", lsm)
		}
	}
}
