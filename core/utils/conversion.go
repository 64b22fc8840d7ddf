package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts loosely typed values (decoded JSON, dataset columns) to int.
// Strings may carry thousands separators. The second result is false when
// the value is not numeric.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case string:
		s := strings.NewReplacer(",", "", "_", "").Replace(strings.TrimSpace(v))
		i, err := strconv.Atoi(s)
		return i, err == nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, false
	}
}

// ToString converts various types to string. Nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (non-zero is true), and strings ("1", "true", "yes", "on").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		i, ok := ToInt(v)
		return ok && i != 0
	}
}
