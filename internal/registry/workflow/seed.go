package workflow

import "time"

// Seed loads the default workflow definitions into an empty registry.
func (r *Registry) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return
	}

	defaults := []Workflow{
		{
			ID:             r.newID(),
			Name:           "User Registration Approval",
			Type:           TypeApproval,
			Description:    "Workflow for approving new user registrations",
			AssignedUserID: 1,
			IsActive:       true,
			Steps: []Step{
				{ID: r.newID(), Name: "Initial Review", Description: "Review user information", Order: 1, Type: StepAction},
				{ID: r.newID(), Name: "Approval Decision", Description: "Approve or reject registration", Order: 2, Type: StepCondition},
			},
			CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             r.newID(),
			Name:           "Profile Verification Notification",
			Type:           TypeNotification,
			Description:    "Send notifications for profile verification requests",
			AssignedUserID: 2,
			IsActive:       true,
			Steps: []Step{
				{ID: r.newID(), Name: "Send Notification", Description: "Notify assigned user about verification request", Order: 1, Type: StepNotification},
			},
			CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             r.newID(),
			Name:           "Automated Backup Process",
			Type:           TypeAutomated,
			Description:    "Daily automated backup of system data",
			AssignedUserID: 1,
			IsActive:       false,
			Steps: []Step{
				{ID: r.newID(), Name: "Data Backup", Description: "Create system backup", Order: 1, Type: StepAction},
				{ID: r.newID(), Name: "Verification", Description: "Verify backup integrity", Order: 2, Type: StepAction},
			},
			CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range defaults {
		defaults[i].CreatedBy = "system"
		defaults[i].UpdatedBy = "system"
	}

	r.items = append(r.items, defaults...)
	r.hub.Publish(r.snapshotLocked())
}
