package walker

import (
	"strconv"
	"strings"
)

// Resolve walks a structured document tree along a dotted path, handling
// field[index] subscripts into arrays. Any resolution failure (missing
// key, out-of-range or non-numeric index, wrong shape) reports no value;
// it is never an error.
func Resolve(doc map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = doc
	for _, part := range strings.Split(path, ".") {
		name, index, hasIndex, ok := splitSubscript(part)
		if !ok {
			return nil, false
		}

		m, isMap := current.(map[string]any)
		if !isMap {
			return nil, false
		}
		next, exists := m[name]
		if !exists {
			return nil, false
		}

		if hasIndex {
			arr, isArr := next.([]any)
			if !isArr || index < 0 || index >= len(arr) {
				return nil, false
			}
			next = arr[index]
		}
		current = next
	}
	return current, true
}

// splitSubscript parses "field[3]" into ("field", 3, true). A part with
// no subscript passes through unchanged.
func splitSubscript(part string) (name string, index int, hasIndex, ok bool) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		return part, 0, false, true
	}
	if !strings.HasSuffix(part, "]") {
		return "", 0, false, false
	}
	idx, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil {
		return "", 0, false, false
	}
	return part[:open], idx, true, true
}
