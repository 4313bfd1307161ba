package checklist

import "strings"

// Store holds the checked state of every checkbox in the loaded document.
// It is owned by a single renderer and is not safe for concurrent use.
type Store struct {
	checked  map[Key]bool
	order    []Key
	onToggle ToggleFunc
}

// NewStore creates an empty store. onToggle may be nil.
func NewStore(onToggle ToggleFunc) *Store {
	return &Store{
		checked:  make(map[Key]bool),
		onToggle: onToggle,
	}
}

// Initialize scans doc and replaces all state with the parsed checkbox flags.
func (s *Store) Initialize(doc string) {
	checked := make(map[Key]bool)
	order := make([]Key, 0)

	for _, line := range strings.Split(normalize(doc), "\n") {
		depth, label, isChecked, ok := matchCheckbox(line)
		if !ok {
			continue
		}
		key := Key{Depth: depth, Label: label}
		if _, seen := checked[key]; !seen {
			order = append(order, key)
		}
		// Last occurrence wins for colliding keys
		checked[key] = isChecked
	}

	s.checked = checked
	s.order = order
}

// Toggle flips the state of key and notifies the toggle hook.
// Keys that were not seeded by Initialize are rejected with ErrUnknownKey.
func (s *Store) Toggle(key Key) (bool, error) {
	current, ok := s.checked[key]
	if !ok {
		return false, ErrUnknownKey
	}

	next := !current
	s.checked[key] = next

	if s.onToggle != nil {
		s.onToggle(key.Label, next)
	}
	return next, nil
}

// IsChecked returns the state of key, false when unknown.
func (s *Store) IsChecked(key Key) bool {
	return s.checked[key]
}

// Has reports whether key was seeded from the current document.
func (s *Store) Has(key Key) bool {
	_, ok := s.checked[key]
	return ok
}

// Keys returns the seeded keys in document order.
func (s *Store) Keys() []Key {
	keys := make([]Key, len(s.order))
	copy(keys, s.order)
	return keys
}

// Stats calculates checklist statistics over unique keys, so duplicate
// rows sharing a depth and label count once.
func (s *Store) Stats() Stats {
	total := len(s.checked)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, v := range s.checked {
		if v {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
