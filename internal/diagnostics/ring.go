// Package diagnostics keeps a bounded window of recent operation errors
// for the troubleshooting endpoint. It is best-effort only and never
// affects request outcomes.
package diagnostics

import (
	"sync"
	"time"
)

type Entry struct {
	Time      time.Time `json:"time"`
	Operation string    `json:"operation"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
}

type Sink interface {
	Record(e Entry)
	Recent() []Entry
}

// Ring is a fixed-capacity circular buffer, oldest entry evicted first.
// Safe for concurrent use.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{entries: make([]Entry, capacity)}
}

func (r *Ring) Record(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
}

// Recent returns entries newest first.
func (r *Ring) Recent() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}
	out := make([]Entry, 0, size)
	for i := 1; i <= size; i++ {
		idx := (r.next - i + len(r.entries)) % len(r.entries)
		out = append(out, r.entries[idx])
	}
	return out
}
