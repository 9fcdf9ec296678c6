package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/registry/settings"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSettingsRouter() (*gin.Engine, *settings.Registry) {
	registry := settings.NewRegistry("tester")
	handler := NewSettingsHandler(registry)

	r := gin.New()
	r.GET("/api/global-settings", handler.List)
	r.GET("/api/global-settings/types", handler.DataTypes)
	r.GET("/api/global-settings/:id", handler.Get)
	r.POST("/api/global-settings", handler.Create)
	r.PUT("/api/global-settings/:id", handler.Update)
	r.DELETE("/api/global-settings/:id", handler.Delete)
	r.POST("/api/global-settings/:id/toggle", handler.ToggleActive)
	return r, registry
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSettingsAPI_CreateReturnsFormattedViews(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "POST", "/api/global-settings",
		`{"variableName":"MAX_RETRIES","dataType":"number","value":"5"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID           string  `json:"id"`
			VariableName string  `json:"variableName"`
			Value        float64 `json:"value"`
			DisplayValue string  `json:"displayValue"`
			FormValue    string  `json:"formValue"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Data.Value != 5 {
		t.Errorf("expected coerced value 5, got %v", resp.Data.Value)
	}
	if resp.Data.DisplayValue != "5" {
		t.Errorf("expected display value \"5\", got %q", resp.Data.DisplayValue)
	}
	if resp.Data.FormValue != "5" {
		t.Errorf("expected form value \"5\", got %q", resp.Data.FormValue)
	}
}

func TestSettingsAPI_DuplicateNameConflicts(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "POST", "/api/global-settings",
		`{"variableName":"APP_NAME","dataType":"string","value":"Console"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", w.Code)
	}

	// Case-insensitive duplicate
	w = doJSON(t, r, "POST", "/api/global-settings",
		`{"variableName":"App_Name","dataType":"string","value":"Other"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSettingsAPI_InvalidValueUnprocessable(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "POST", "/api/global-settings",
		`{"variableName":"CONFIG","dataType":"json","value":"{not valid}"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for invalid JSON value, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSettingsAPI_GetMissingIsNotFound(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "GET", "/api/global-settings/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSettingsAPI_DeleteMissingIsNoContent(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "DELETE", "/api/global-settings/nope", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for delete of missing id, got %d", w.Code)
	}
}

func TestSettingsAPI_ToggleFlipsFlag(t *testing.T) {
	r, registry := newSettingsRouter()

	created, err := registry.Create(settings.CreateRequest{
		VariableName: "MAINTENANCE_MODE",
		DataType:     settings.TypeBoolean,
		Value:        "false",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	w := doJSON(t, r, "POST", "/api/global-settings/"+created.ID+"/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			IsActive bool `json:"isActive"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if resp.Data.IsActive {
		t.Error("expected isActive false after toggle")
	}
}

func TestSettingsAPI_TypesCatalog(t *testing.T) {
	r, _ := newSettingsRouter()

	w := doJSON(t, r, "GET", "/api/global-settings/types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []settings.DataTypeInfo `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(resp.Data) != 6 {
		t.Errorf("expected 6 data types, got %d", len(resp.Data))
	}
}
