package errors

import "sync"

// The last-error slot is a single process-wide cell read by embedders that
// consume the library through an error-code style boundary. It starts
// empty and each recorded failure overwrites the previous one.
var (
	lastMu sync.Mutex
	last   error
)

// RecordLast stores err in the last-error slot, replacing any previous
// value. Recording nil clears the slot.
func RecordLast(err error) {
	lastMu.Lock()
	last = err
	lastMu.Unlock()
}

// Last returns the most recently recorded error without clearing it, or
// nil if no failure has been recorded.
func Last() error {
	lastMu.Lock()
	defer lastMu.Unlock()
	return last
}

// TakeLast returns the most recently recorded error and clears the slot.
func TakeLast() error {
	lastMu.Lock()
	defer lastMu.Unlock()
	err := last
	last = nil
	return err
}
