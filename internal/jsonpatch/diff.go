package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Operation is a single RFC 6902 patch operation.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Between computes the patch that transforms before into after. Both values
// are round-tripped through JSON first so any serialisable type works.
func Between(before, after any) ([]Operation, error) {
	a, err := toTree(before)
	if err != nil {
		return nil, err
	}
	b, err := toTree(after)
	if err != nil {
		return nil, err
	}
	return Diff(a, b, ""), nil
}

func toTree(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// Diff computes the patch that transforms a into b. Both a and b should be the
// result of json.Unmarshal into any. Path should be "" for the root document.
// Object keys are visited in sorted order so the output is stable.
func Diff(a, b any, path string) []Operation {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Operation{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Operation{replaceOp(path, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) []Operation {
	var ops []Operation

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}

	return ops
}

func diffArrays(a, b []any, path string) []Operation {
	var ops []Operation

	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Remove from the tail so earlier indices stay valid.
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value any) Operation {
	return Operation{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value any) Operation {
	return Operation{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Operation {
	return Operation{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
