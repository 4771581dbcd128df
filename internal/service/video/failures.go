package video

import "sync"

// failureRegistry records terminal job failures in process memory so
// status polling can report them. Completion is judged from the
// filesystem alone; only failures need an extra record because a failed
// job leaves no artifact behind.
type failureRegistry struct {
	mu       sync.RWMutex
	failures map[string]string
}

func newFailureRegistry() *failureRegistry {
	return &failureRegistry{failures: make(map[string]string)}
}

func (r *failureRegistry) record(jobID, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[jobID] = reason
}

func (r *failureRegistry) lookup(jobID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reason, ok := r.failures[jobID]
	return reason, ok
}
