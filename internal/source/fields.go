package source

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Field returns the value stored under key in obj, matching the key exactly.
// When the object repeats a key the last occurrence wins, the same as a
// decode into a map would. The result does not exist if obj is not an object
// or has no such key.
//
// Keys are compared verbatim rather than through a gjson path, so titles and
// field names containing '.', '*' or '?' need no escaping.
func Field(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !obj.IsObject() {
		return found
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

// Text returns the string held by r if r is a JSON string with at least one
// non-whitespace character. The string is returned untrimmed.
func Text(r gjson.Result) (string, bool) {
	if r.Type != gjson.String || strings.TrimSpace(r.Str) == "" {
		return "", false
	}
	return r.Str, true
}

// Number returns the value held by r if r is a JSON number or boolean.
// Booleans count as 1 and 0, which existing data files rely on. Numeric
// strings and null are not numbers.
func Number(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.True:
		return 1, true
	case gjson.False:
		return 0, true
	}
	return 0, false
}
