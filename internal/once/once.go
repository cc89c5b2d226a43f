// Package once provides keyed one-shot gates for diagnostics that must be
// reported at most once per category.
package once

import "sync"

// Warner remembers which keys have fired. The zero value is ready to use.
type Warner struct {
	mu    sync.Mutex
	fired map[string]bool
}

// Do runs fn the first time it is called with key and reports whether fn ran.
// The key is marked before fn runs and fn runs without the gate held, so fn
// may call back into w; concurrent callers for the same key return at once
// without waiting for fn.
func (w *Warner) Do(key string, fn func()) bool {
	w.mu.Lock()
	if w.fired[key] {
		w.mu.Unlock()
		return false
	}
	if w.fired == nil {
		w.fired = make(map[string]bool)
	}
	w.fired[key] = true
	w.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

func (w *Warner) Fired(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fired[key]
}
