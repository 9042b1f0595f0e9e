package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fieldOrder is the priority in which field-keyed validation errors are
// surfaced when a response carries more than one.
var fieldOrder = []string{"username", "email", "password", "role"}

// ExtractMessage pulls the most useful human-readable message out of an error
// response body. Lookup order: field-keyed validation lists, a generic
// "detail" string, the first "non_field_errors" entry, then the provided
// fallback. Malformed bodies fall through to the fallback.
func ExtractMessage(body []byte, fallback string) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	for _, field := range fieldOrder {
		if msg := firstString(payload[field]); msg != "" {
			label := strings.ToUpper(field[:1]) + field[1:]
			return fmt.Sprintf("%s: %s", label, msg)
		}
	}

	if detail, ok := payload["detail"].(string); ok && detail != "" {
		return detail
	}

	if msg := firstString(payload["non_field_errors"]); msg != "" {
		return msg
	}

	return fallback
}

// firstString returns the first string in a value that is either a string or
// a list of strings, the two shapes the remote API uses for messages.
func firstString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		for _, item := range value {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
