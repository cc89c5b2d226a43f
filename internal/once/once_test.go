package once

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoRunsOncePerKey(t *testing.T) {
	var w Warner
	calls := map[string]int{}

	for range 5 {
		w.Do("a", func() { calls["a"]++ })
		w.Do("b", func() { calls["b"]++ })
	}

	if calls["a"] != 1 || calls["b"] != 1 {
		t.Errorf("calls = %v, want one each", calls)
	}
	if !w.Fired("a") || !w.Fired("b") {
		t.Error("expected both keys fired")
	}
	if w.Fired("c") {
		t.Error("key c should not have fired")
	}
}

func TestDoReportsFirstCall(t *testing.T) {
	var w Warner
	if !w.Do("k", nil) {
		t.Error("first Do should report true")
	}
	if w.Do("k", nil) {
		t.Error("second Do should report false")
	}
}

func TestDoConcurrent(t *testing.T) {
	var w Warner
	var n atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Do("k", func() { n.Add(1) })
		}()
	}
	wg.Wait()
	if got := n.Load(); got != 1 {
		t.Errorf("fn ran %d times, want 1", got)
	}
}

func TestDoReentrant(t *testing.T) {
	var w Warner
	inner := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Do("outer", func() {
			w.Do("outer", func() { inner++ })
			w.Do("inner", func() { inner++ })
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Do deadlocked when fn called back into the gate")
	}
	if inner != 1 {
		t.Errorf("inner calls = %d, want 1", inner)
	}
}
