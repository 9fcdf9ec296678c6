package middleware

import "testing"

func TestParseRouteInfo(t *testing.T) {
	tests := []struct {
		path   string
		method string
		module string
		action string
	}{
		{"/api/global-settings", "POST", "Global Settings", "Create"},
		{"/api/global-settings/:id", "PUT", "Global Settings", "Update"},
		{"/api/global-settings/:id", "DELETE", "Global Settings", "Delete"},
		{"/api/global-settings/:id/toggle", "POST", "Global Settings", "Toggle"},
		{"/api/workflows/:id/toggle", "POST", "Workflows", "Toggle"},
		{"/api/requests/:id/approve", "POST", "Requests", "Approve"},
		{"/api/requests/:id/revise", "POST", "Requests", "Revise"},
		{"/api/requests/:id/reject", "POST", "Requests", "Reject"},
		{"/api/activity-logs/cleanup", "POST", "Activity Logs", "Cleanup"},
		{"/api/users/:id", "GET", "Users", "GET"},
	}

	for _, tt := range tests {
		module, action := parseRouteInfo(tt.path, tt.method)
		if module != tt.module || action != tt.action {
			t.Errorf("parseRouteInfo(%q, %q) = %q/%q, expected %q/%q",
				tt.path, tt.method, module, action, tt.module, tt.action)
		}
	}
}
