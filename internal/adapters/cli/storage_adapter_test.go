package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// mockStorageService implements primary.StorageService for testing
type mockStorageService struct {
	report   *primary.StorageReport
	clearErr error
	cleared  bool
}

func (m *mockStorageService) CheckStorage(ctx context.Context) (*primary.StorageReport, error) {
	return m.report, nil
}

func (m *mockStorageService) DumpStorage(ctx context.Context, format string) ([]byte, error) {
	if format != "json" {
		return nil, models.ErrValidation
	}
	return []byte(`{"fencers": []}`), nil
}

func (m *mockStorageService) ClearStorage(ctx context.Context) error {
	m.cleared = true
	return m.clearErr
}

// mockActivityService implements primary.ActivityService for testing
type mockActivityService struct {
	entries     []*primary.ActivityEntry
	lastFilters primary.ActivityFilters
}

func (m *mockActivityService) ListActivity(ctx context.Context, filters primary.ActivityFilters) ([]*primary.ActivityEntry, error) {
	m.lastFilters = filters
	return m.entries, nil
}

func (m *mockActivityService) PruneActivity(ctx context.Context, days int) (int, error) {
	return 4, nil
}

func TestStorageAdapter_Check(t *testing.T) {
	tests := []struct {
		name     string
		report   *primary.StorageReport
		contains []string
	}{
		{
			name: "writable",
			report: &primary.StorageReport{
				Backend:  "sqlite",
				Writable: true,
				Keys:     []string{"fencing_tracker_fencers"},
				Counts:   map[string]int{models.EntityFencer: 2, models.EntityDEBout: 1},
			},
			contains: []string{"Backend: sqlite", "OK", "fencer", "DE bout", "fencing_tracker_fencers"},
		},
		{
			name:     "read-only",
			report:   &primary.StorageReport{Backend: "file", Error: "permission denied"},
			contains: []string{"NOT WRITABLE (permission denied)", "Keys: 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			adapter := NewStorageAdapter(&mockStorageService{report: tt.report}, &mockActivityService{}, &out)

			if _, err := adapter.Check(context.Background()); err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestStorageAdapter_Dump(t *testing.T) {
	var out bytes.Buffer
	adapter := NewStorageAdapter(&mockStorageService{}, &mockActivityService{}, &out)

	if err := adapter.Dump(context.Background(), "json"); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	if out.String() != `{"fencers": []}` {
		t.Errorf("dump should be written verbatim, got %q", out.String())
	}

	if err := adapter.Dump(context.Background(), "xml"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStorageAdapter_Clear(t *testing.T) {
	var out bytes.Buffer
	storage := &mockStorageService{clearErr: errors.New("locked")}
	adapter := NewStorageAdapter(storage, &mockActivityService{}, &out)

	err := adapter.Clear(context.Background())
	if err == nil || !strings.Contains(err.Error(), "locked") {
		t.Errorf("expected wrapped error, got %v", err)
	}
	if !storage.cleared {
		t.Error("expected ClearStorage to be called")
	}
}

func TestStorageAdapter_Activity(t *testing.T) {
	var out bytes.Buffer
	activity := &mockActivityService{entries: []*primary.ActivityEntry{
		{Actor: "coach", EntityType: models.EntityFencer, EntityID: "FNC-001", Action: "delete", Cascaded: 6, Timestamp: "2023-06-15T12:00:00Z"},
	}}
	adapter := NewStorageAdapter(&mockStorageService{}, activity, &out)

	filters := primary.ActivityFilters{EntityType: models.EntityFencer, Limit: 10}
	if _, err := adapter.Activity(context.Background(), filters); err != nil {
		t.Fatalf("Activity failed: %v", err)
	}
	if activity.lastFilters != filters {
		t.Errorf("filters not forwarded: %+v", activity.lastFilters)
	}
	for _, want := range []string{"coach", "delete", "FNC-001", "6"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	n, err := adapter.Prune(context.Background(), 30)
	if err != nil || n != 4 {
		t.Fatalf("Prune = %d, %v", n, err)
	}
	if !strings.Contains(out.String(), "Pruned 4") {
		t.Errorf("unexpected output: %q", out.String())
	}
}
