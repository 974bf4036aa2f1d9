package tracy

import (
	"sync"
	"testing"
)

func TestClampDepth(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		depth int
		want  int32
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{24, 24},
		{62, 62},
		{63, 62},
		{1 << 20, 62},
	} {
		if want, have := tc.want, clampDepth(tc.depth); want != have {
			t.Errorf("clampDepth(%d): want %d, have %d", tc.depth, want, have)
		}
	}
}

func TestGoid(t *testing.T) {
	t.Parallel()

	if goid() == 0 {
		t.Fatal("goid returned 0 for a live goroutine")
	}

	if want, have := goid(), goid(); want != have {
		t.Errorf("goid unstable within a goroutine: %d then %d", want, have)
	}

	ids := make(chan uint64, 2)
	for i := 0; i < 2; i++ {
		go func() { ids <- goid() }()
	}
	a, b := <-ids, <-ids
	if a == b {
		t.Errorf("distinct goroutines share goid %d", a)
	}
	if self := goid(); self == a || self == b {
		t.Errorf("spawned goroutine shares goid %d with the test goroutine", self)
	}
}

func TestLockableAsPlainMutex(t *testing.T) {
	t.Parallel()

	// Both an unannounced zero value and a Lockable announced through an
	// inactive client must behave as ordinary mutexes.
	var inert *Client
	for _, l := range []*Lockable{{}, inert.NewLockable("counter")} {
		var (
			wg sync.WaitGroup
			n  int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					l.Lock()
					n++
					l.Unlock()
				}
			}()
		}
		wg.Wait()

		if want, have := 8000, n; want != have {
			t.Errorf("counter under Lockable: want %d, have %d", want, have)
		}

		if !l.TryLock() {
			t.Error("TryLock on free Lockable failed")
		}
		if l.TryLock() {
			t.Error("TryLock on held Lockable succeeded")
		}
		l.Unlock()
	}
}
