package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Operation is one RFC 6902 patch operation.
type Operation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
	// Previous is the value at Path before the patch; not part of RFC 6902,
	// kept so a reader can see what changed without the source document.
	Previous interface{} `json:"previous,omitempty"`
}

// DiffValues marshals a and b to JSON and diffs the resulting documents.
func DiffValues(a, b interface{}) ([]Operation, error) {
	da, err := toDocument(a)
	if err != nil {
		return nil, err
	}
	db, err := toDocument(b)
	if err != nil {
		return nil, err
	}
	return Diff(da, db, ""), nil
}

// Diff computes an RFC 6902 JSON Patch that transforms a into b. Both must be
// the result of json.Unmarshal into interface{}. Path should be "" for the
// root document. Object keys are visited in sorted order so the patch is
// stable between calls.
func Diff(a, b interface{}, path string) []Operation {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Operation{{Op: "replace", Path: path, Value: b, Previous: a}}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if a != b {
		return []Operation{{Op: "replace", Path: path, Value: b, Previous: a}}
	}
	return nil
}

func diffObjects(a, b map[string]interface{}, path string) []Operation {
	var ops []Operation

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, Operation{Op: "remove", Path: path + "/" + escapeKey(k), Previous: a[k]})
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, Operation{Op: "add", Path: childPath, Value: b[k]})
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}
	return ops
}

func diffArrays(a, b []interface{}, path string) []Operation {
	var ops []Operation

	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Removals run from the end so earlier indices stay valid.
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, Operation{Op: "remove", Path: path + "/" + strconv.Itoa(i), Previous: a[i]})
	}
	for i := minLen; i < len(b); i++ {
		ops = append(ops, Operation{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}
	return ops
}

func toDocument(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
