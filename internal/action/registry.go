package action

import (
	"fmt"
	"sort"
	"sync"

	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

// Registry maps action ids to implementations. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds an action under its metadata id.
func (r *Registry) Register(a Action) error {
	if a == nil {
		return tibcoerrors.NewActionError("", fmt.Errorf("action is nil"))
	}

	meta := a.Metadata()
	if err := meta.Validate(); err != nil {
		return tibcoerrors.NewActionError(meta.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actions[meta.ID]; exists {
		return tibcoerrors.NewActionError(meta.ID, fmt.Errorf("action already registered"))
	}

	r.actions[meta.ID] = a
	return nil
}

// Get retrieves an action by id.
func (r *Registry) Get(id string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[id]
	if !ok {
		return nil, tibcoerrors.NewActionError(id, fmt.Errorf("no action registered"))
	}

	return a, nil
}

// List returns metadata for every registered action sorted by id.
func (r *Registry) List() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metadata, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a.Metadata())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
