package nsdata

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Scalar conversions shared by the descriptor engine and the decoders.
// Values are expected as produced by encoding/json with UseNumber; plain
// float64 and Go integers are accepted too.

func toString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch(path, "string", v, nil)
	}
	return s, nil
}

func toBool(path string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(path, "bool", v, nil)
	}
	return b, nil
}

func toInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, mismatch(path, "int", v, err)
		}
		return int(f), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, mismatch(path, "int", v, nil)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	default:
		return 0, mismatch(path, "int", v, nil)
	}
}

func toFloat(path string, v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(path, "float", v, err)
		}
		return f, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, mismatch(path, "float", v, nil)
	}
}

func toDate(path string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, mismatch(path, "date", v, nil)
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, mismatch(path, "date", v, err)
	}
	return t, nil
}

func toDateTime(path string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, mismatch(path, "date-time", v, nil)
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, mismatch(path, "date-time", v, err)
	}
	return t, nil
}

func elemPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func keyPath(path, key string) string {
	return path + "." + key
}
