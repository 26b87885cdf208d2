// Package access holds the lookup and filter helpers shared by the
// cascade planner and the aggregation functions.
// Everything here is a pure function over a collection snapshot.
package access

// Identified is any record with an id.
type Identified interface {
	GetID() string
}

// ByID returns the first record with the given id.
func ByID[T Identified](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Where returns the records matching pred, preserving order.
func Where[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// WhereForeignKeyEquals returns the records whose foreign key equals id.
func WhereForeignKeyEquals[T any](items []T, fk func(T) string, id string) []T {
	return Where(items, func(item T) bool { return fk(item) == id })
}

// WhereIn returns the records whose foreign key is in ids.
func WhereIn[T any](items []T, fk func(T) string, ids map[string]struct{}) []T {
	return Where(items, func(item T) bool {
		_, ok := ids[fk(item)]
		return ok
	})
}

// IDs returns the ids of items, preserving order.
func IDs[T Identified](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.GetID())
	}
	return out
}

// IDSet returns the ids of items as a set.
func IDSet[T Identified](items []T) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[item.GetID()] = struct{}{}
	}
	return out
}
