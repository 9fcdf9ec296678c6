package settings

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/beauroweb/backend/internal/registry"
)

// newTestRegistry returns a registry with a deterministic clock and id
// sequence so timestamps strictly increase per mutation.
func newTestRegistry() *Registry {
	r := NewRegistry("admin")
	tick := 0
	r.now = func() time.Time {
		tick++
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
	}
	seq := 0
	r.newID = func() string {
		seq++
		return fmt.Sprintf("setting_%d", seq)
	}
	return r
}

func TestRegistry_CreateNumberFromString(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "MAX_RETRIES", DataType: TypeNumber, Value: "5"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Value.Type() != TypeNumber || s.Value.Num() != 5 {
		t.Errorf("value = %v (%s), expected 5 (number)", s.Value.Raw(), s.Value.Type())
	}
	if !s.IsActive {
		t.Error("new settings should default to active")
	}
	if s.CreatedBy != "admin" || s.UpdatedBy != "admin" {
		t.Errorf("attribution = %s/%s, expected admin/admin", s.CreatedBy, s.UpdatedBy)
	}
}

func TestRegistry_CreateArrayFromCommaString(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "FEATURE_FLAGS", DataType: TypeArray, Value: "a,b,c"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	expected := []any{"a", "b", "c"}
	if !reflect.DeepEqual(s.Value.Items(), expected) {
		t.Errorf("value = %v, expected %v", s.Value.Items(), expected)
	}
}

func TestRegistry_CreateInvalidJSONFails(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Create(CreateRequest{VariableName: "CONFIG", DataType: TypeJSON, Value: "{not valid}"})
	if err == nil {
		t.Fatal("Create() should reject invalid JSON")
	}
	if !registry.IsValidation(err) {
		t.Errorf("error should be a ValidationError, got %T", err)
	}
	if len(r.List()) != 0 {
		t.Errorf("failed create must not change the collection, got %d entries", len(r.List()))
	}
}

func TestRegistry_CreateDuplicateNameCaseInsensitive(t *testing.T) {
	r := newTestRegistry()

	if _, err := r.Create(CreateRequest{VariableName: "MAX_RETRIES", DataType: TypeNumber, Value: "5"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := r.Create(CreateRequest{VariableName: "Max_Retries", DataType: TypeString, Value: "x"})
	if err == nil {
		t.Fatal("Create() should reject a case-variant duplicate name")
	}
	var ve *registry.ValidationError
	if !asValidation(err, &ve) || ve.Code != registry.CodeDuplicateName {
		t.Errorf("error code = %v, expected %s", err, registry.CodeDuplicateName)
	}
	if len(r.List()) != 1 {
		t.Errorf("collection length = %d, expected 1", len(r.List()))
	}
}

func TestRegistry_CreateRejectsBadNameFormat(t *testing.T) {
	r := newTestRegistry()

	for _, name := range []string{"lowercase", "1STARTS_WITH_DIGIT", "HAS-DASH", "HAS SPACE", ""} {
		if _, err := r.Create(CreateRequest{VariableName: name, DataType: TypeString, Value: "x"}); err == nil {
			t.Errorf("Create(%q) should fail the identifier pattern", name)
		}
	}
	if len(r.List()) != 0 {
		t.Errorf("collection should stay empty, got %d", len(r.List()))
	}
}

func TestRegistry_UpdateRecoercesUnderEffectiveType(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "THRESHOLD", DataType: TypeString, Value: "10"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	numberType := TypeNumber
	updated, err := r.Update(UpdateRequest{ID: s.ID, DataType: &numberType, Value: json.RawMessage(`"25"`)})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.DataType != TypeNumber || updated.Value.Num() != 25 {
		t.Errorf("value = %v (%s), expected 25 (number)", updated.Value.Raw(), updated.DataType)
	}
}

func TestRegistry_UpdateTypeChangeRecoercesStoredValue(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "LIMIT", DataType: TypeString, Value: "12"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	numberType := TypeNumber
	updated, err := r.Update(UpdateRequest{ID: s.ID, DataType: &numberType})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Value.Type() != TypeNumber || updated.Value.Num() != 12 {
		t.Errorf("stored value should re-coerce to 12 (number), got %v (%s)",
			updated.Value.Raw(), updated.Value.Type())
	}
}

func TestRegistry_UpdateFailureLeavesCollectionUnchanged(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "RATE", DataType: TypeNumber, Value: "3"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	before := r.List()

	if _, err := r.Update(UpdateRequest{ID: s.ID, Value: json.RawMessage(`"abc"`)}); err == nil {
		t.Fatal("Update() should fail number coercion")
	}

	after := r.List()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	if !after[0].Value.Equal(before[0].Value) || !after[0].UpdatedAt.Equal(before[0].UpdatedAt) {
		t.Error("failed update must not modify the stored entry")
	}
}

func TestRegistry_UpdateUnknownIDIsNotFound(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Update(UpdateRequest{ID: "missing"})
	if err == nil || !registry.IsNotFound(err) {
		t.Errorf("Update() = %v, expected NotFoundError", err)
	}
}

func TestRegistry_DeleteUnknownIDIsNoOp(t *testing.T) {
	r := newTestRegistry()

	if _, err := r.Create(CreateRequest{VariableName: "KEEP_ME", DataType: TypeString, Value: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r.Delete("missing")
	if len(r.List()) != 1 {
		t.Errorf("collection length = %d, expected 1", len(r.List()))
	}
}

func TestRegistry_DeleteRemovesEntry(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "TEMP", DataType: TypeString, Value: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r.Delete(s.ID)
	if len(r.List()) != 0 {
		t.Errorf("collection length = %d, expected 0", len(r.List()))
	}
	if _, err := r.Get(s.ID); !registry.IsNotFound(err) {
		t.Errorf("Get() after delete = %v, expected NotFoundError", err)
	}
}

func TestRegistry_ToggleActiveTwiceRestoresFlag(t *testing.T) {
	r := newTestRegistry()

	s, err := r.Create(CreateRequest{VariableName: "FLAG", DataType: TypeBoolean, Value: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first, err := r.ToggleActive(s.ID)
	if err != nil {
		t.Fatalf("first ToggleActive() error = %v", err)
	}
	if first.IsActive {
		t.Error("first toggle should deactivate")
	}
	if !first.UpdatedAt.After(s.UpdatedAt) {
		t.Error("updatedAt should strictly increase on first toggle")
	}

	second, err := r.ToggleActive(s.ID)
	if err != nil {
		t.Fatalf("second ToggleActive() error = %v", err)
	}
	if !second.IsActive {
		t.Error("second toggle should restore the original flag")
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("updatedAt should strictly increase on second toggle")
	}
}

func TestRegistry_ToggleActiveUnknownIDIsNotFound(t *testing.T) {
	r := newTestRegistry()

	if _, err := r.ToggleActive("missing"); !registry.IsNotFound(err) {
		t.Errorf("ToggleActive() = %v, expected NotFoundError", err)
	}
}

func TestRegistry_ConcurrentTogglesNeverLoseAFlip(t *testing.T) {
	r := NewRegistry("admin")

	s, err := r.Create(CreateRequest{VariableName: "FLAG", DataType: TypeBoolean, Value: true})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	const toggles = 100
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.ToggleActive(s.ID); err != nil {
				t.Errorf("ToggleActive() error = %v", err)
			}
		}()
	}
	wg.Wait()

	// An even number of flips must land back on the initial flag.
	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.IsActive {
		t.Errorf("isActive = %v after %d toggles, expected true", got.IsActive, toggles)
	}
}

func TestRegistry_SubscribeObservesMutationsInOrder(t *testing.T) {
	r := newTestRegistry()

	ch := r.Subscribe("client-1")
	defer r.Unsubscribe("client-1")

	initial := <-ch
	if len(initial) != 0 {
		t.Fatalf("initial snapshot length = %d, expected 0", len(initial))
	}

	a, err := r.Create(CreateRequest{VariableName: "A_ONE", DataType: TypeString, Value: "1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := r.Create(CreateRequest{VariableName: "B_TWO", DataType: TypeString, Value: "2"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	r.Delete(a.ID)

	lengths := []int{len(<-ch), len(<-ch), len(<-ch)}
	expected := []int{1, 2, 1}
	if !reflect.DeepEqual(lengths, expected) {
		t.Errorf("snapshot lengths = %v, expected %v", lengths, expected)
	}
}

func TestRegistry_FailedMutationEmitsNoSnapshot(t *testing.T) {
	r := newTestRegistry()

	ch := r.Subscribe("client-1")
	defer r.Unsubscribe("client-1")
	<-ch // initial

	if _, err := r.Create(CreateRequest{VariableName: "bad name", DataType: TypeString, Value: "x"}); err == nil {
		t.Fatal("Create() should fail")
	}

	select {
	case snap := <-ch:
		t.Errorf("no snapshot expected after failed create, got length %d", len(snap))
	default:
	}
}

func TestRegistry_SeedLoadsDefaults(t *testing.T) {
	r := newTestRegistry()
	r.Seed()

	entries := r.List()
	if len(entries) == 0 {
		t.Fatal("Seed() should load default entries")
	}

	s, ok := r.FindByName("supported_languages")
	if !ok {
		t.Fatal("FindByName should match case-insensitively")
	}
	if s.DataType != TypeArray {
		t.Errorf("SUPPORTED_LANGUAGES type = %s, expected array", s.DataType)
	}
	if s.CreatedBy != "system" {
		t.Errorf("seed attribution = %s, expected system", s.CreatedBy)
	}

	// Seeding is idempotent.
	r.Seed()
	if len(r.List()) != len(entries) {
		t.Error("second Seed() should be a no-op")
	}
}

func TestRegistry_DataTypesCatalog(t *testing.T) {
	r := newTestRegistry()

	types := r.DataTypes()
	if len(types) != 6 {
		t.Fatalf("catalog length = %d, expected 6", len(types))
	}
	if types[0].Label != "String" || types[0].Value != TypeString {
		t.Errorf("first catalog entry = %+v", types[0])
	}
}

func asValidation(err error, target **registry.ValidationError) bool {
	ve, ok := err.(*registry.ValidationError)
	if !ok {
		return false
	}
	*target = ve
	return true
}
