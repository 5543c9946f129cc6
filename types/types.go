package types

import "strings"

// DataType is the declared value type of a Crystal report element.
type DataType string

const (
	TypeString   DataType = "String"
	TypeNumber   DataType = "Number"
	TypeCurrency DataType = "Currency"
	TypeDate     DataType = "Date"
	TypeTime     DataType = "Time"
	TypeDateTime DataType = "DateTime"
	TypeBoolean  DataType = "Boolean"
	TypeMemo     DataType = "Memo"
	TypeBlob     DataType = "Blob"
	TypeUnknown  DataType = "Unknown"
)

// ParseDataType converts a type name from the extractor into a DataType.
// Matching is case-insensitive; unrecognized names map to TypeUnknown.
func ParseDataType(s string) DataType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text":
		return TypeString
	case "number", "numeric", "int", "integer", "float", "double":
		return TypeNumber
	case "currency":
		return TypeCurrency
	case "date":
		return TypeDate
	case "time":
		return TypeTime
	case "datetime", "timestamp":
		return TypeDateTime
	case "boolean", "bool":
		return TypeBoolean
	case "memo":
		return TypeMemo
	case "blob":
		return TypeBlob
	default:
		return TypeUnknown
	}
}

// OracleType returns the Oracle scalar type used for values of this type.
// Booleans map to VARCHAR2 because Oracle Reports columns cannot carry
// PL/SQL BOOLEAN values; unknown types default to VARCHAR2.
func (d DataType) OracleType() string {
	switch d {
	case TypeNumber, TypeCurrency:
		return "NUMBER"
	case TypeDate:
		return "DATE"
	case TypeDateTime, TypeTime:
		return "TIMESTAMP"
	case TypeMemo:
		return "CLOB"
	default:
		return "VARCHAR2"
	}
}

// UnsupportedPolicy controls what happens when a formula cannot be translated.
type UnsupportedPolicy string

const (
	// PolicyPlaceholder emits a commented stub program unit returning NULL.
	PolicyPlaceholder UnsupportedPolicy = "placeholder"
	// PolicySkip emits no program unit and reports the item as failed.
	PolicySkip UnsupportedPolicy = "skip"
	// PolicyFail marks the enclosing result as failed with no output.
	PolicyFail UnsupportedPolicy = "fail"
)

// ParseUnsupportedPolicy converts a policy name, defaulting to placeholder.
func ParseUnsupportedPolicy(s string) UnsupportedPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return PolicySkip
	case "fail":
		return PolicyFail
	default:
		return PolicyPlaceholder
	}
}

// Warning describes a non-fatal issue found during translation.
// Warnings are accumulated on the producing result and never dropped.
type Warning struct {
	// Message describes the issue
	Message string
	// Fragment is the source text the warning refers to, when known
	Fragment string
}

func (w Warning) String() string {
	if w.Fragment == "" {
		return w.Message
	}
	return w.Message + ": " + w.Fragment
}

// Warnf builds a Warning from a message and optional source fragment.
func Warnf(message, fragment string) Warning {
	return Warning{Message: message, Fragment: fragment}
}

// Messages flattens a warning list into plain strings.
func Messages(warnings []Warning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

// TranslatedExpression is the result of translating one source expression.
// It is immutable once returned.
type TranslatedExpression struct {
	// SQL is the translated Oracle expression text
	SQL string
	// Warnings accumulated during translation, in discovery order
	Warnings []Warning
	// Succeeded is false when the source text was malformed
	Succeeded bool
}
