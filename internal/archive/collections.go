package archive

// Entity is implemented by every top-level archive entity.
type Entity interface {
	Journal | Album | Event | FoodMenu
}

func entityID[T Entity](item T) string {
	switch v := any(item).(type) {
	case Journal:
		return v.ID
	case Album:
		return v.ID
	case Event:
		return v.ID
	case FoodMenu:
		return v.ID
	}
	return ""
}

// Prepend returns a new slice with item placed first. New entities are
// shown at the top of their list.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// FindByID returns the entity with the given id.
func FindByID[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if entityID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ReplaceByID returns a copy of items where the element sharing item's id is
// replaced. The second result is false when no element matched.
func ReplaceByID[T Entity](items []T, item T) ([]T, bool) {
	id := entityID(item)
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if entityID(out[i]) == id {
			out[i] = item
			return out, true
		}
	}
	return out, false
}

// RemoveByID returns a copy of items without the element with the given id.
// Exactly one element is removed; the order of the rest is kept.
func RemoveByID[T Entity](items []T, id string) ([]T, bool) {
	for i := range items {
		if entityID(items[i]) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out, false
}

// MoveItem moves the element at index from to index to and returns the new
// slice. Out-of-range indexes leave items untouched.
func MoveItem[T any](items []T, from, to int) []T {
	if from == to || from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return items
	}
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)
	moved := items[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}
