package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// NormalizeID collapses the upstream's inconsistent id shapes (numeric ids,
// string ids, rows nesting a branch object, legacy branchId fields) into a
// plain string key. All id comparisons downstream are string comparisons.
func NormalizeID(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]interface{}:
		if nested, ok := v["branch"].(map[string]interface{}); ok {
			if id, ok := nested["id"]; ok {
				return NormalizeID(id)
			}
		}
		for _, key := range []string{"id", "ID", "branchId", "featureId"} {
			if id, ok := v[key]; ok {
				return NormalizeID(id)
			}
		}
		return ""
	default:
		return fmt.Sprintf("%v", raw)
	}
}
