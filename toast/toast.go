// ABOUTME: Ephemeral toast queue shared by the TUI views
// ABOUTME: Entries expire after a fixed TTL, stacked in arrival order
package toast

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL matches the auto-dismiss delay of the original UI.
const DefaultTTL = 3500 * time.Millisecond

type Kind int

const (
	Info Kind = iota
	Success
	Error
)

type Toast struct {
	ID        string
	Message   string
	Kind      Kind
	ExpiresAt time.Time
}

// Queue is an ordered set of live toasts. It is not safe for
// concurrent use; the single-threaded TUI loop is its only writer.
type Queue struct {
	ttl     time.Duration
	entropy *rand.Rand
	toasts  []Toast
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{
		ttl:     DefaultTTL,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// Push appends a toast and returns its id. There is no deduplication;
// identical messages stack.
func (q *Queue) Push(message string, kind Kind) string {
	now := q.now()
	id := ulid.MustNew(ulid.Timestamp(now), q.entropy).String()
	q.toasts = append(q.toasts, Toast{
		ID:        id,
		Message:   message,
		Kind:      kind,
		ExpiresAt: now.Add(q.ttl),
	})
	return id
}

// Expire drops every toast whose TTL has elapsed and reports whether
// anything changed.
func (q *Queue) Expire() bool {
	now := q.now()
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.ExpiresAt.After(now) {
			kept = append(kept, t)
		}
	}
	changed := len(kept) != len(q.toasts)
	q.toasts = kept
	return changed
}

// Active returns the live toasts in arrival order.
func (q *Queue) Active() []Toast {
	return q.toasts
}

func (q *Queue) Len() int {
	return len(q.toasts)
}
