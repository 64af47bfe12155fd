package catalog

import "time"

type record interface {
	RecordID() int64
}

// nextID derives an id from the clock, stepping past ids already taken.
func nextID[T record](records []T, now time.Time) int64 {
	taken := make(map[int64]bool, len(records))
	for _, r := range records {
		taken[r.RecordID()] = true
	}

	id := now.UnixMilli()
	for taken[id] {
		id++
	}
	return id
}

func indexOf[T record](records []T, id int64) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

func removeID[T record](records []T, id int64) ([]T, bool) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			out = append(out, r)
		}
	}
	return out, len(out) != len(records)
}

func prepend[T any](records []T, rec T) []T {
	return append([]T{rec}, records...)
}
