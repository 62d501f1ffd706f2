//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can mutate the wire shape directly.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or deletes it when value is nil.
// Dotted keys such as "extras.quantity" descend into nested objects and into
// every element of a nested array.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		setPath(m, strings.Split(key, "."), value)
	}
}

func setPath(m map[string]any, path []string, value any) {
	if len(path) == 1 {
		if value == nil {
			delete(m, path[0])
		} else {
			m[path[0]] = value
		}
		return
	}
	switch next := m[path[0]].(type) {
	case map[string]any:
		setPath(next, path[1:], value)
	case []any:
		for _, el := range next {
			if obj, ok := el.(map[string]any); ok {
				setPath(obj, path[1:], value)
			}
		}
	}
}
