// Package settings implements the global-settings registry: a typed,
// in-memory configuration store with runtime type coercion. Each entry
// declares one of six data types, and every stored value is guaranteed
// to decode under its declared type.
package settings

import (
	"encoding/json"
	"time"
)

// DataType enumerates the supported value types of a global setting.
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeJSON    DataType = "json"
	TypeDate    DataType = "date"
	TypeArray   DataType = "array"
)

// DataTypeInfo describes one catalog entry for selection controls.
type DataTypeInfo struct {
	Label       string   `json:"label"`
	Value       DataType `json:"value"`
	Description string   `json:"description"`
}

// dataTypeCatalog is the fixed, non-extensible type catalog.
var dataTypeCatalog = []DataTypeInfo{
	{Label: "String", Value: TypeString, Description: "Text values"},
	{Label: "Number", Value: TypeNumber, Description: "Numeric values"},
	{Label: "Boolean", Value: TypeBoolean, Description: "True/False values"},
	{Label: "JSON", Value: TypeJSON, Description: "JSON object/array"},
	{Label: "Date", Value: TypeDate, Description: "Date values"},
	{Label: "Array", Value: TypeArray, Description: "Array of values"},
}

// DataTypes returns the catalog of supported data types.
func DataTypes() []DataTypeInfo {
	out := make([]DataTypeInfo, len(dataTypeCatalog))
	copy(out, dataTypeCatalog)
	return out
}

func validDataType(dt DataType) bool {
	switch dt {
	case TypeString, TypeNumber, TypeBoolean, TypeJSON, TypeDate, TypeArray:
		return true
	}
	return false
}

// GlobalSetting is one named, typed configuration entry.
type GlobalSetting struct {
	ID           string    `json:"id"`
	VariableName string    `json:"variableName"`
	DataType     DataType  `json:"dataType"`
	Value        Value     `json:"value"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CreatedBy    string    `json:"createdBy"`
	UpdatedBy    string    `json:"updatedBy"`
}

// CreateRequest carries the fields of a setting creation.
type CreateRequest struct {
	VariableName string   `json:"variableName" binding:"required"`
	DataType     DataType `json:"dataType" binding:"required"`
	Value        any      `json:"value"`
	Description  string   `json:"description"`
}

// UpdateRequest carries a partial update. Nil fields are left untouched.
// Value is a raw JSON fragment so that an absent value (nil) can be told
// apart from an explicit null, which coerces to the type's zero value.
type UpdateRequest struct {
	ID           string          `json:"id"`
	VariableName *string         `json:"variableName"`
	DataType     *DataType       `json:"dataType"`
	Value        json.RawMessage `json:"value"`
	Description  *string         `json:"description"`
	IsActive     *bool           `json:"isActive"`
}
