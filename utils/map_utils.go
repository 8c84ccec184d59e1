package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Helper functions for pulling typed values out of loosely typed form maps.
// Values arrive either as strings (multipart/urlencoded forms) or as JSON types.

// GetString returns the value as a trimmed string
func GetString(data map[string]interface{}, key string) string {
	switch val := data[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []string:
		if len(val) == 0 {
			return ""
		}
		return strings.TrimSpace(val[0])
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// GetInt returns the value as an int; empty values are zero
func GetInt(data map[string]interface{}, key string) (int, error) {
	switch val := data[key].(type) {
	case nil:
		return 0, nil
	case int:
		return val, nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, fmt.Errorf("%v is not a whole number", val)
		}
		return int(val), nil
	}
	s := GetString(data, key)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// GetBool returns the value as a bool; checkbox style "on" counts as true
func GetBool(data map[string]interface{}, key string) (bool, error) {
	if val, ok := data[key].(bool); ok {
		return val, nil
	}
	switch strings.ToLower(GetString(data, key)) {
	case "", "false", "off", "0", "no":
		return false, nil
	case "true", "on", "1", "yes":
		return true, nil
	}
	return false, fmt.Errorf("%q is not a boolean", GetString(data, key))
}

// GetStringList returns the value as an ordered list of non-empty strings.
// A single string is split on newlines.
func GetStringList(data map[string]interface{}, key string) []string {
	var raw []string
	switch val := data[key].(type) {
	case nil:
		return []string{}
	case []string:
		raw = val
	case []interface{}:
		for _, v := range val {
			raw = append(raw, fmt.Sprint(v))
		}
	default:
		raw = strings.Split(fmt.Sprint(val), "\n")
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
