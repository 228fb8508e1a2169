package mapper

import "time"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// relation maps an included relation. A nil slice means the relation was not loaded
// and stays out of the payload; an empty one is kept as [].
func relation[T any, R any](values []T, convert func(T) R) *[]R {
	if values == nil {
		return nil
	}
	items := make([]R, 0, len(values))
	for _, value := range values {
		items = append(items, convert(value))
	}
	return &items
}

func list[T any, R any](values []T, convert func(T) R) []R {
	items := make([]R, 0, len(values))
	for _, value := range values {
		items = append(items, convert(value))
	}
	return items
}
