package settings

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beauroweb/backend/internal/registry"
)

// variableNamePattern is the required shape of a variable name: an
// uppercase identifier.
var variableNamePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Registry is the authoritative, exclusively owned collection of global
// settings. All mutations funnel through its operations, which is what
// preserves the uniqueness and type-validity invariants. Every mutation
// publishes exactly one snapshot of the full collection, in mutation
// order.
type Registry struct {
	mu    sync.RWMutex
	items []GlobalSetting
	hub   *registry.Hub[[]GlobalSetting]

	actor string
	now   func() time.Time
	newID func() string
}

// NewRegistry creates an empty settings registry. Mutations are
// attributed to actor, since no authentication is in scope.
func NewRegistry(actor string) *Registry {
	return &Registry{
		hub:   registry.NewHub[[]GlobalSetting](),
		actor: actor,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// DataTypes returns the fixed catalog of the six supported data types.
func (r *Registry) DataTypes() []DataTypeInfo {
	return DataTypes()
}

// List returns a snapshot of all entries, including inactive ones.
func (r *Registry) List() []GlobalSetting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Get returns the entry with the given id.
func (r *Registry) Get(id string) (GlobalSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return GlobalSetting{}, registry.NewNotFoundError("setting", id)
}

// FindByName returns the entry whose variable name matches name,
// case-insensitively.
func (r *Registry) FindByName(name string) (GlobalSetting, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if strings.EqualFold(s.VariableName, name) {
			return s, true
		}
	}
	return GlobalSetting{}, false
}

// Subscribe registers a snapshot consumer. The returned channel yields
// the full collection after every mutation, in order. The current state
// is delivered as the first emission.
func (r *Registry) Subscribe(clientID string) <-chan []GlobalSetting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.hub.SubscribeWith(clientID, r.snapshotLocked())
}

// Unsubscribe removes a snapshot consumer.
func (r *Registry) Unsubscribe(clientID string) {
	r.hub.Unsubscribe(clientID)
}

// SubscriberCount returns the number of active snapshot consumers.
func (r *Registry) SubscriberCount() int {
	return r.hub.Count()
}

// Create validates, coerces and appends a new setting. On any
// validation failure the collection is left unchanged.
func (r *Registry) Create(req CreateRequest) (GlobalSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validateNameLocked(req.VariableName, ""); err != nil {
		return GlobalSetting{}, err
	}

	value, err := coerceAt(req.Value, req.DataType, r.now())
	if err != nil {
		return GlobalSetting{}, err
	}

	now := r.now()
	setting := GlobalSetting{
		ID:           r.newID(),
		VariableName: req.VariableName,
		DataType:     req.DataType,
		Value:        value,
		Description:  req.Description,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    r.actor,
		UpdatedBy:    r.actor,
	}

	r.items = append(r.items, setting)
	r.hub.Publish(r.snapshotLocked())
	return setting, nil
}

// Update merges the supplied fields over an existing entry. A supplied
// value is re-coerced under the effective data type: the request's type
// if given, otherwise the stored one. Changing the data type without
// supplying a value re-coerces the stored value under the new type.
func (r *Registry) Update(req UpdateRequest) (GlobalSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, s := range r.items {
		if s.ID == req.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return GlobalSetting{}, registry.NewNotFoundError("setting", req.ID)
	}

	updated := r.items[idx]

	if req.VariableName != nil {
		if err := r.validateNameLocked(*req.VariableName, req.ID); err != nil {
			return GlobalSetting{}, err
		}
		updated.VariableName = *req.VariableName
	}

	effectiveType := updated.DataType
	if req.DataType != nil {
		effectiveType = *req.DataType
	}

	switch {
	case req.Value != nil:
		var raw any
		if err := json.Unmarshal(req.Value, &raw); err != nil {
			return GlobalSetting{}, registry.NewValidationError(registry.CodeInvalidValue, "Invalid value payload")
		}
		value, err := coerceAt(raw, effectiveType, r.now())
		if err != nil {
			return GlobalSetting{}, err
		}
		updated.Value = value
	case effectiveType != updated.DataType:
		value, err := coerceAt(updated.Value.Raw(), effectiveType, r.now())
		if err != nil {
			return GlobalSetting{}, err
		}
		updated.Value = value
	}
	updated.DataType = effectiveType

	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	updated.UpdatedAt = r.now()
	updated.UpdatedBy = r.actor

	r.items[idx] = updated
	r.hub.Publish(r.snapshotLocked())
	return updated, nil
}

// Delete removes an entry. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := false
	for _, s := range r.items {
		if s.ID == id {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	r.items = kept
	if removed {
		r.hub.Publish(r.snapshotLocked())
	}
}

// ToggleActive flips the active flag of an entry. The read and the
// flip happen under one lock acquisition, so concurrent toggles never
// lose a flip.
func (r *Registry) ToggleActive(id string) (GlobalSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.items {
		if s.ID != id {
			continue
		}
		s.IsActive = !s.IsActive
		s.UpdatedAt = r.now()
		s.UpdatedBy = r.actor
		r.items[i] = s
		r.hub.Publish(r.snapshotLocked())
		return s, nil
	}
	return GlobalSetting{}, registry.NewNotFoundError("setting", id)
}

func (r *Registry) validateNameLocked(name, excludeID string) error {
	if !variableNamePattern.MatchString(name) {
		return registry.NewValidationError(registry.CodeInvalidFormat,
			"Variable name must start with an uppercase letter and contain only uppercase letters, digits and underscores")
	}
	for _, s := range r.items {
		if s.ID != excludeID && strings.EqualFold(s.VariableName, name) {
			return registry.NewValidationError(registry.CodeDuplicateName,
				fmt.Sprintf("A setting named %q already exists", s.VariableName))
		}
	}
	return nil
}

func (r *Registry) snapshotLocked() []GlobalSetting {
	out := make([]GlobalSetting, len(r.items))
	copy(out, r.items)
	return out
}
