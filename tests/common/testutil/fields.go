//go:build unit || e2e

package testutil

// Field overwrites one key of a request map built by DtoMap.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = value
	}
}

// Drop removes keys so the binding sees them as missing.
func Drop(keys ...string) func(m map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
