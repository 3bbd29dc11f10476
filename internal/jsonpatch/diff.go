// Package jsonpatch computes RFC 6902 patches between flat JSON objects.
// The precheck API uses it to describe the submitted questionnaire as a
// patch over the blank one, which the host stores as the wizard's answer
// trail. The fact object is a single flat object, so only object diffing
// is supported.
package jsonpatch

import (
	"sort"
	"strings"
)

// Diff computes an RFC 6902 JSON Patch that transforms a into b. Both
// should be the result of unmarshalling an object into
// map[string]interface{}. Path should be "" for the root document.
// Operations are emitted in key order so the same inputs always produce
// the same patch.
func Diff(a, b map[string]interface{}, path string) []map[string]interface{} {
	var ops []map[string]interface{}

	// Removed keys (in a but not in b)
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	// Added and changed keys
	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		bv := b[k]
		if !inA {
			ops = append(ops, addOp(childPath, bv))
			continue
		}
		if av != bv {
			ops = append(ops, replaceOp(childPath, bv))
		}
	}

	return ops
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func addOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "add", "path": path, "value": value}
}

func replaceOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "replace", "path": path, "value": value}
}

func removeOp(path string) map[string]interface{} {
	return map[string]interface{}{"op": "remove", "path": path}
}

// escapeKey applies RFC 6901 escaping for "~" and "/" in key names.
func escapeKey(k string) string {
	k = strings.ReplaceAll(k, "~", "~0")
	return strings.ReplaceAll(k, "/", "~1")
}
