//go:build unit || e2e

package testutil

// Field builds a DtoMap mutator; a nil value removes the key entirely,
// which is how the missing-field request cases are produced.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
