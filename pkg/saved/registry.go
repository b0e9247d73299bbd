// Package saved tracks which deals a user has bookmarked. The registry is a
// plain insertion-ordered set of listing ids with toggle semantics; it knows
// nothing about authentication. Callers must guard logged-out access (see
// store.ToggleSave).
package saved

import (
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

type Registry struct {
	members map[v1.ID]struct{}
	order   []v1.ID
}

func NewRegistry() *Registry {
	return &Registry{members: map[v1.ID]struct{}{}}
}

// Toggle adds id if absent and removes it if present. Two toggles in a row
// are a no-op.
func (r *Registry) Toggle(id v1.ID) {
	if _, ok := r.members[id]; ok {
		delete(r.members, id)
		for i, m := range r.order {
			if m == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		return
	}
	r.members[id] = struct{}{}
	r.order = append(r.order, id)
}

func (r *Registry) Contains(id v1.ID) bool {
	_, ok := r.members[id]
	return ok
}

// List returns the saved ids in the order they were first saved.
func (r *Registry) List() []v1.ID {
	out := make([]v1.ID, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Clear empties the registry. Runs on logout.
func (r *Registry) Clear() {
	r.members = map[v1.ID]struct{}{}
	r.order = nil
}
