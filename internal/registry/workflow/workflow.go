// Package workflow implements the workflow-definition registry: named,
// typed records describing approval and automation processes with their
// ordered steps. Definitions are stored, not executed.
package workflow

import "time"

// Type enumerates the supported workflow kinds.
type Type string

const (
	TypeApproval     Type = "approval"
	TypeNotification Type = "notification"
	TypeAutomated    Type = "automated"
	TypeManual       Type = "manual"
	TypeConditional  Type = "conditional"
)

// TypeInfo describes one catalog entry for selection controls.
type TypeInfo struct {
	Label       string `json:"label"`
	Value       Type   `json:"value"`
	Description string `json:"description"`
}

var typeCatalog = []TypeInfo{
	{Label: "Approval", Value: TypeApproval, Description: "Requires manual approval"},
	{Label: "Notification", Value: TypeNotification, Description: "Sends notifications"},
	{Label: "Automated", Value: TypeAutomated, Description: "Fully automated process"},
	{Label: "Manual", Value: TypeManual, Description: "Manual execution required"},
	{Label: "Conditional", Value: TypeConditional, Description: "Based on conditions"},
}

// Types returns the fixed catalog of workflow types.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(typeCatalog))
	copy(out, typeCatalog)
	return out
}

// StepType enumerates the supported step kinds.
type StepType string

const (
	StepAction       StepType = "action"
	StepCondition    StepType = "condition"
	StepNotification StepType = "notification"
)

// Step is one position in a workflow definition. Ordering is
// caller-defined and stored as supplied; Config is an opaque payload
// with no enforced structure.
type Step struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Order       int            `json:"order"`
	Type        StepType       `json:"type"`
	Config      map[string]any `json:"config,omitempty"`
}

// AssignedUser is the denormalized display projection of the user a
// workflow is assigned to, resolved from the external user directory.
type AssignedUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Workflow is one stored workflow definition.
type Workflow struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           Type          `json:"type"`
	Description    string        `json:"description,omitempty"`
	AssignedUserID uint          `json:"assignedUserId"`
	AssignedUser   *AssignedUser `json:"assignedUser,omitempty"`
	IsActive       bool          `json:"isActive"`
	Steps          []Step        `json:"steps"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	CreatedBy      string        `json:"createdBy"`
	UpdatedBy      string        `json:"updatedBy"`
}

// CreateRequest carries the fields of a workflow creation.
type CreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Type           Type   `json:"type" binding:"required"`
	Description    string `json:"description"`
	AssignedUserID uint   `json:"assignedUserId"`
	IsActive       bool   `json:"isActive"`
	Steps          []Step `json:"steps"`
}

// UpdateRequest carries a partial update. Nil fields are left untouched.
type UpdateRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Type           *Type   `json:"type"`
	Description    *string `json:"description"`
	AssignedUserID *uint   `json:"assignedUserId"`
	IsActive       *bool   `json:"isActive"`
	Steps          *[]Step `json:"steps"`
}

// Filters narrows a listing. Zero-valued fields do not filter.
type Filters struct {
	Search         string
	Type           Type
	AssignedUserID *uint
	IsActive       *bool
}

// UserDirectory resolves assigned-user ids against the external user
// store. Lookup failures are not errors: a workflow may reference a
// user the directory does not know.
type UserDirectory interface {
	Lookup(id uint) (AssignedUser, bool)
}
