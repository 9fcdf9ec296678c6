package settings

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/beauroweb/backend/internal/registry"
)

// Value is a tagged union holding a setting's payload in the canonical
// representation of its data type. Exactly one payload field is
// meaningful, selected by dataType, which makes coercion a total match
// and rules out "wrong shape for declared type" states.
type Value struct {
	dataType DataType
	str      string
	num      float64
	boolean  bool
	jsonData any
	date     time.Time
	items    []any
}

func StringValue(s string) Value        { return Value{dataType: TypeString, str: s} }
func NumberValue(n float64) Value       { return Value{dataType: TypeNumber, num: n} }
func BoolValue(b bool) Value            { return Value{dataType: TypeBoolean, boolean: b} }
func JSONValue(v any) Value             { return Value{dataType: TypeJSON, jsonData: v} }
func DateValue(t time.Time) Value       { return Value{dataType: TypeDate, date: t} }
func ArrayValue(items []any) Value      { return Value{dataType: TypeArray, items: items} }
func StringsValue(items []string) Value { return ArrayValue(toAnySlice(items)) }

// Type returns the data type tag of the value.
func (v Value) Type() DataType { return v.dataType }

func (v Value) Str() string       { return v.str }
func (v Value) Num() float64      { return v.num }
func (v Value) Bool() bool        { return v.boolean }
func (v Value) JSON() any         { return v.jsonData }
func (v Value) Date() time.Time   { return v.date }
func (v Value) Items() []any      { return v.items }

// Raw returns the payload as a plain Go value, the shape the REST
// contract serializes.
func (v Value) Raw() any {
	switch v.dataType {
	case TypeString:
		return v.str
	case TypeNumber:
		return v.num
	case TypeBoolean:
		return v.boolean
	case TypeJSON:
		return v.jsonData
	case TypeDate:
		return v.date
	case TypeArray:
		return v.items
	}
	return nil
}

// Equal reports whether two values share the same type tag and payload.
func (v Value) Equal(o Value) bool {
	if v.dataType != o.dataType {
		return false
	}
	switch v.dataType {
	case TypeDate:
		return v.date.Equal(o.date)
	case TypeJSON:
		return reflect.DeepEqual(v.jsonData, o.jsonData)
	case TypeArray:
		return reflect.DeepEqual(v.items, o.items)
	default:
		return v.str == o.str && v.num == o.num && v.boolean == o.boolean
	}
}

// MarshalJSON serializes the payload, not the union wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

// Coerce converts a raw input into the canonical representation for the
// target data type. Empty input (nil or "") maps to the type's zero
// value; for dates that is the current time.
func Coerce(raw any, dataType DataType) (Value, error) {
	return coerceAt(raw, dataType, time.Now())
}

func coerceAt(raw any, dataType DataType, now time.Time) (Value, error) {
	if !validDataType(dataType) {
		return Value{}, registry.NewValidationError(registry.CodeInvalidValue,
			fmt.Sprintf("unsupported data type %q", dataType))
	}

	// Re-applying coercion to an already coerced value is a no-op.
	if v, ok := raw.(Value); ok && v.dataType == dataType {
		return v, nil
	}

	if isEmpty(raw) {
		return zeroValue(dataType, now), nil
	}

	switch dataType {
	case TypeString:
		return StringValue(stringify(raw)), nil
	case TypeNumber:
		return coerceNumber(raw)
	case TypeBoolean:
		return BoolValue(truthy(raw)), nil
	case TypeJSON:
		return coerceJSON(raw)
	case TypeDate:
		return coerceDate(raw)
	case TypeArray:
		return coerceArray(raw)
	}
	return Value{}, registry.NewValidationError(registry.CodeInvalidValue, "unsupported data type")
}

func isEmpty(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && s == ""
}

func zeroValue(dataType DataType, now time.Time) Value {
	switch dataType {
	case TypeString:
		return StringValue("")
	case TypeNumber:
		return NumberValue(0)
	case TypeBoolean:
		return BoolValue(false)
	case TypeJSON:
		return JSONValue(map[string]any{})
	case TypeDate:
		return DateValue(now)
	case TypeArray:
		return ArrayValue([]any{})
	}
	return Value{}
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case Value:
		return FormatForInput(v)
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", v)
	}
}

func coerceNumber(raw any) (Value, error) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, registry.NewValidationError(registry.CodeInvalidNumber, "Invalid number value")
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Value{}, registry.NewValidationError(registry.CodeInvalidNumber, "Invalid number value")
		}
		n = f
	case bool:
		if v {
			n = 1
		}
	default:
		return Value{}, registry.NewValidationError(registry.CodeInvalidNumber, "Invalid number value")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{}, registry.NewValidationError(registry.CodeInvalidNumber, "Invalid number value")
	}
	return NumberValue(n), nil
}

func truthy(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		// Any other non-empty value counts as true.
		return true
	}
}

func coerceJSON(raw any) (Value, error) {
	if s, ok := raw.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return Value{}, registry.NewValidationError(registry.CodeInvalidJSON, "Invalid JSON format")
		}
		return JSONValue(parsed), nil
	}
	// Already a structured value.
	return JSONValue(raw), nil
}

// dateLayouts are tried in order when parsing a date string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

func coerceDate(raw any) (Value, error) {
	switch v := raw.(type) {
	case time.Time:
		return DateValue(v), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return DateValue(t), nil
			}
		}
		return Value{}, registry.NewValidationError(registry.CodeInvalidDate, "Invalid date format")
	default:
		return Value{}, registry.NewValidationError(registry.CodeInvalidDate, "Invalid date value")
	}
}

func coerceArray(raw any) (Value, error) {
	switch v := raw.(type) {
	case []any:
		return ArrayValue(v), nil
	case []string:
		return ArrayValue(toAnySlice(v)), nil
	case string:
		// A string that parses as a JSON array is taken as one; anything
		// else falls back to comma splitting, which never fails.
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			if arr, ok := parsed.([]any); ok {
				return ArrayValue(arr), nil
			}
		}
		parts := strings.Split(v, ",")
		items := make([]any, len(parts))
		for i, p := range parts {
			items[i] = strings.TrimSpace(p)
		}
		return ArrayValue(items), nil
	default:
		return Value{}, registry.NewValidationError(registry.CodeInvalidArray, "Invalid array value")
	}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatForDisplay projects a value to the human-readable string shown
// in the settings table.
func FormatForDisplay(v Value) string {
	switch v.dataType {
	case TypeString:
		if v.str == "" {
			return "Empty string"
		}
		return v.str
	case TypeNumber:
		return formatNumber(v.num)
	case TypeBoolean:
		if v.boolean {
			return "True"
		}
		return "False"
	case TypeJSON:
		b, err := json.MarshalIndent(v.jsonData, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v.jsonData)
		}
		return string(b)
	case TypeDate:
		return v.date.Format("Jan 2, 2006")
	case TypeArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	}
	return "Not set"
}

// FormatForInput projects a value to the canonical edit-string used to
// pre-populate a form field. Feeding the result back through Coerce
// reproduces the value for string, number, boolean and array types.
func FormatForInput(v Value) string {
	switch v.dataType {
	case TypeString:
		return v.str
	case TypeNumber:
		return formatNumber(v.num)
	case TypeBoolean:
		return strconv.FormatBool(v.boolean)
	case TypeJSON, TypeArray:
		b, err := json.Marshal(v.Raw())
		if err != nil {
			return fmt.Sprintf("%v", v.Raw())
		}
		return string(b)
	case TypeDate:
		return v.date.Format("2006-01-02")
	}
	return ""
}
