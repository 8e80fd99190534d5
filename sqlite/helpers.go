package sqlite

import (
	"encoding/json"
	"fmt"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error naming the field if parsing fails.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// encodeJSON marshals a list-valued field into its JSON column form.
// Nil slices encode as empty arrays so columns never hold "null".
func encodeJSON(v any) (string, error) {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return "[]", nil
		}
	case []float64:
		if t == nil {
			return "[]", nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON column: %w", err)
	}
	return string(b), nil
}

// decodeStrings parses a JSON string-array column.
func decodeStrings(value, fieldName string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// decodeFloats parses a JSON number-array column.
func decodeFloats(value, fieldName string) ([]float64, error) {
	var out []float64
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return out, nil
}
