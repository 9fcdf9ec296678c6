package workflow

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beauroweb/backend/internal/registry"
)

const (
	nameMinLen        = 3
	nameMaxLen        = 100
	descriptionMaxLen = 500
)

// Registry is the exclusively owned collection of workflow definitions.
// Filtered reads are non-destructive; every mutation publishes exactly
// one snapshot of the full collection, in mutation order.
type Registry struct {
	mu    sync.RWMutex
	items []Workflow
	hub   *registry.Hub[[]Workflow]

	directory UserDirectory
	actor     string
	now       func() time.Time
	newID     func() string
}

// NewRegistry creates an empty workflow registry. directory may be nil,
// in which case assigned users are never resolved.
func NewRegistry(actor string, directory UserDirectory) *Registry {
	return &Registry{
		hub:       registry.NewHub[[]Workflow](),
		directory: directory,
		actor:     actor,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Types returns the fixed catalog of the five workflow types.
func (r *Registry) Types() []TypeInfo {
	return Types()
}

// List returns the current collection narrowed by filters. Search
// matches name, description and assigned-user display name,
// case-insensitively.
func (r *Registry) List(filters Filters) []Workflow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Workflow, 0, len(r.items))
	for _, w := range r.items {
		resolved := r.resolveLocked(w)
		if !matches(resolved, filters) {
			continue
		}
		out = append(out, resolved)
	}
	return out
}

// Get returns the workflow with the given id.
func (r *Registry) Get(id string) (Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.items {
		if w.ID == id {
			return r.resolveLocked(w), nil
		}
	}
	return Workflow{}, registry.NewNotFoundError("workflow", id)
}

// Subscribe registers a snapshot consumer; the current state is
// delivered as the first emission.
func (r *Registry) Subscribe(clientID string) <-chan []Workflow {
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

// Create validates and appends a new workflow definition. The assigned
// user id is stored without an existence check against the directory.
func (r *Registry) Create(req CreateRequest) (Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := validateName(req.Name); err != nil {
		return Workflow{}, err
	}
	if err := validateDescription(req.Description); err != nil {
		return Workflow{}, err
	}

	now := r.now()
	w := Workflow{
		ID:             r.newID(),
		Name:           req.Name,
		Type:           req.Type,
		Description:    req.Description,
		AssignedUserID: req.AssignedUserID,
		IsActive:       req.IsActive,
		Steps:          r.withStepIDs(req.Steps),
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      r.actor,
		UpdatedBy:      r.actor,
	}

	r.items = append(r.items, w)
	r.hub.Publish(r.snapshotLocked())
	return r.resolveLocked(w), nil
}

// Update merges the supplied fields over an existing workflow.
func (r *Registry) Update(req UpdateRequest) (Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, w := range r.items {
		if w.ID == req.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Workflow{}, registry.NewNotFoundError("workflow", req.ID)
	}

	updated := r.items[idx]

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return Workflow{}, err
		}
		updated.Name = *req.Name
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return Workflow{}, err
		}
		updated.Description = *req.Description
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.AssignedUserID != nil {
		updated.AssignedUserID = *req.AssignedUserID
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.Steps != nil {
		updated.Steps = r.withStepIDs(*req.Steps)
	}

	updated.UpdatedAt = r.now()
	updated.UpdatedBy = r.actor

	r.items[idx] = updated
	r.hub.Publish(r.snapshotLocked())
	return r.resolveLocked(updated), nil
}

// Delete removes a workflow. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := false
	for _, w := range r.items {
		if w.ID == id {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	r.items = kept
	if removed {
		r.hub.Publish(r.snapshotLocked())
	}
}

// ToggleActive flips the active flag of a workflow. The read and the
// flip happen under one lock acquisition, so concurrent toggles never
// lose a flip.
func (r *Registry) ToggleActive(id string) (Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.items {
		if w.ID != id {
			continue
		}
		w.IsActive = !w.IsActive
		w.UpdatedAt = r.now()
		w.UpdatedBy = r.actor
		r.items[i] = w
		r.hub.Publish(r.snapshotLocked())
		return r.resolveLocked(w), nil
	}
	return Workflow{}, registry.NewNotFoundError("workflow", id)
}

func validateName(name string) error {
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		return registry.NewValidationError(registry.CodeInvalidLength,
			fmt.Sprintf("Workflow name must be %d to %d characters", nameMinLen, nameMaxLen))
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > descriptionMaxLen {
		return registry.NewValidationError(registry.CodeInvalidLength,
			fmt.Sprintf("Description must be at most %d characters", descriptionMaxLen))
	}
	return nil
}

func (r *Registry) withStepIDs(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = r.newID()
		}
	}
	return out
}

// resolveLocked attaches the assigned-user projection when the
// directory knows the id; otherwise the reference stays id-only.
func (r *Registry) resolveLocked(w Workflow) Workflow {
	if r.directory == nil || w.AssignedUserID == 0 {
		return w
	}
	if user, ok := r.directory.Lookup(w.AssignedUserID); ok {
		w.AssignedUser = &user
	}
	return w
}

func matches(w Workflow, f Filters) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		name := strings.ToLower(w.Name)
		description := strings.ToLower(w.Description)
		assignee := ""
		if w.AssignedUser != nil {
			assignee = strings.ToLower(w.AssignedUser.Name)
		}
		if !strings.Contains(name, search) &&
			!strings.Contains(description, search) &&
			!strings.Contains(assignee, search) {
			return false
		}
	}
	if f.Type != "" && w.Type != f.Type {
		return false
	}
	if f.AssignedUserID != nil && w.AssignedUserID != *f.AssignedUserID {
		return false
	}
	if f.IsActive != nil && w.IsActive != *f.IsActive {
		return false
	}
	return true
}

func (r *Registry) snapshotLocked() []Workflow {
	out := make([]Workflow, len(r.items))
	for i, w := range r.items {
		out[i] = r.resolveLocked(w)
	}
	return out
}
