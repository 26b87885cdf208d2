// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces the CLI (or any other front end) calls.
package primary

// WriteResult is the outcome of an add or update.
// Warnings carry persistence failures: the write succeeded in memory but
// could not be saved to the backend.
type WriteResult[T any] struct {
	Record   *T
	Warnings []string
}

// DeleteResult is the outcome of a cascading delete.
type DeleteResult struct {
	Entity   string
	ID       string
	Removed  map[string]int // records removed per entity type, root included
	Warnings []string
}

// Cascaded returns the number of dependent records removed with the root.
func (r DeleteResult) Cascaded() int {
	total := 0
	for _, n := range r.Removed {
		total += n
	}
	if total > 0 {
		total--
	}
	return total
}
