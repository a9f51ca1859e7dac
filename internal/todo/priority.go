package todo

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParsePriority reads a JSON priority value. Numbers are truncated, numeric
// strings are parsed, booleans map to 1 and 0. ok is false for any other
// shape, null included.
func ParsePriority(raw json.RawMessage) (p int, ok bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}

	switch val := v.(type) {
	case float64:
		if math.Abs(val) > math.MaxInt32 {
			return 0, false
		}
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
