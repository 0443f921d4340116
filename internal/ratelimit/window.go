package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindow is an in-process fixed window limiter keyed by caller.
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	Now     func() time.Time
}

type window struct {
	start time.Time
	count int
}

// NewFixedWindow constructs an empty limiter.
func NewFixedWindow() *FixedWindow {
	return &FixedWindow{windows: make(map[string]*window)}
}

// Allow implements Limiter.
func (l *FixedWindow) Allow(_ context.Context, key string, dur time.Duration, max int) (bool, int, time.Time, error) {
	if max <= 0 || dur <= 0 {
		return true, max, l.now().Add(dur), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= dur {
		if !ok && len(l.windows) >= 4096 {
			l.purge(now, dur)
		}
		w = &window{start: now}
		l.windows[key] = w
	}
	w.count++

	remaining := max - w.count
	if remaining < 0 {
		remaining = 0
	}
	return w.count <= max, remaining, w.start.Add(dur), nil
}

// purge drops windows that have already expired. Caller holds the lock.
func (l *FixedWindow) purge(now time.Time, dur time.Duration) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= dur {
			delete(l.windows, key)
		}
	}
}

func (l *FixedWindow) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
