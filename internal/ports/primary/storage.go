package primary

import "context"

// StorageService defines the primary port for storage maintenance.
type StorageService interface {
	// CheckStorage probes the backend with a write and remove of a test key.
	CheckStorage(ctx context.Context) (*StorageReport, error)

	// DumpStorage writes every collection in the given format ("json" or "yaml").
	DumpStorage(ctx context.Context, format string) ([]byte, error)

	// ClearStorage removes every collection from memory and the backend.
	ClearStorage(ctx context.Context) error
}

// StorageReport describes the state of the storage backend.
type StorageReport struct {
	Backend  string
	Writable bool
	Error    string
	Keys     []string
	Counts   map[string]int // records per entity type
}
