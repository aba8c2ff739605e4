package pdf

import (
	"errors"
	"sync"
)

// AllTickets is the tracker sentinel for the batch export.
const AllTickets = "all"

var ErrExportInProgress = errors.New("export already in progress")

// Tracker prevents concurrent duplicate exports of the same ticket (or of
// the batch) and backs the caller's loading indicator. Callers must End the
// marker on both success and failure so a failed export can be retried.
type Tracker struct {
	mu     sync.Mutex
	active map[string]bool
}

func NewTracker() *Tracker {
	return &Tracker{active: make(map[string]bool)}
}

func (t *Tracker) Begin(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active[id] {
		return ErrExportInProgress
	}
	t.active[id] = true
	return nil
}

func (t *Tracker) End(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, id)
}

func (t *Tracker) InProgress(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active[id]
}
