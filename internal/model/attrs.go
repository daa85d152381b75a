package model

import (
	"encoding/json"
	"math"
	"sort"
)

// Attrs is the decoded JSON body of a create or update request.  Values keep
// the types produced by encoding/json (string, float64, bool, nil, ...); the
// parse functions in validate.go decide what is acceptable for each field.
type Attrs map[string]any

// Has reports whether key was sent, even with a null value.
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// permitted returns the keys present in changes that are also allowed,
// sorted so that the first validation error is deterministic.
func permitted(changes Attrs, allowed []string) []string {
	out := make([]string, 0, len(allowed))
	for _, f := range allowed {
		if changes.Has(f) {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// asInt accepts JSON numbers without a fractional part.  Strings and bools
// are rejected rather than converted.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
