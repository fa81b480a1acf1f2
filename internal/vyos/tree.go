// Package vyos implements the client side of the configuration backend along with helpers
// for reading the returned configuration tree.
package vyos

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// Tree is the decoded configuration as returned by the backend. Nodes are nested objects, leaf
// values are strings or lists of strings. Tag nodes (interfaces, rules, routes) are objects keyed
// by the tag value.
type Tree map[string]any

func asTree(value any) (Tree, bool) {
	switch node := value.(type) {
	case Tree:
		return node, true
	case map[string]any:
		return node, true
	default:
		return nil, false
	}
}

// Node walks the keys and returns the object found there. Missing keys and non-object
// values yield a nil Tree, which is safe to read from.
func (t Tree) Node(keys ...string) Tree {
	current := t
	for _, key := range keys {
		next, found := asTree(current[key])
		if !found {
			return nil
		}
		current = next
	}

	return current
}

// Value returns the raw value at the key path.
func (t Tree) Value(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return t, t != nil
	}

	parent := t.Node(keys[:len(keys)-1]...)
	value, found := parent[keys[len(keys)-1]]

	return value, found
}

// String returns a leaf value as a string. Numbers and bools are formatted, other shapes are
// reported as missing.
func (t Tree) String(keys ...string) (string, bool) {
	value, found := t.Value(keys...)
	if !found {
		return "", false
	}

	switch leaf := value.(type) {
	case string:
		return leaf, true
	case float64:
		return strconv.FormatFloat(leaf, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(leaf), true
	default:
		return "", false
	}
}

// Strings normalises a multi value leaf. A single string becomes a one element list, a list
// keeps its string members and an object yields its sorted keys.
func (t Tree) Strings(keys ...string) []string {
	value, found := t.Value(keys...)
	if !found {
		return nil
	}

	switch leaf := value.(type) {
	case string:
		return []string{leaf}
	case []any:
		var out []string
		for _, item := range leaf {
			if str, ok := item.(string); ok {
				out = append(out, str)
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}

		return out
	default:
		if node, ok := asTree(value); ok {
			return node.Keys()
		}

		return nil
	}
}

// Has reports whether the key path exists, regardless of the value type. Valueless VyOS
// nodes such as "disable" decode as empty objects and are still present.
func (t Tree) Has(keys ...string) bool {
	_, found := t.Value(keys...)

	return found
}

// Keys returns the tree keys in a stable order. Numeric keys, as used by rule numbers, sort
// numerically ahead of names.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, compareKeys)

	return keys
}

func compareKeys(a, b string) int {
	numA, errA := strconv.Atoi(a)
	numB, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return numA - numB
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// countEntries counts named members the same way for objects and lists. Scalars and nulls
// count as zero.
func countEntries(value any) int {
	if node, ok := asTree(value); ok {
		return len(node)
	}

	if list, ok := value.([]any); ok {
		return len(list)
	}

	return 0
}
