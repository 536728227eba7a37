package provider

import (
	"encoding/json"
	"strconv"
)

// ExtractLabel normalizes a season identifier from the source's mixed
// formats into its string label.
//
// Leagues that run within a calendar year report seasons as bare numbers
// (2023); leagues spanning two years report strings ("2023-2024"). This
// handles both.
//
// Returns ok=false if no label can be extracted.
func ExtractLabel(val interface{}) (string, bool) {
	if val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}
