package configtoml

import "github.com/Azhovan/configtoml/internal/normalize"

// flatEntry is a leaf of the value tree stored under its encoded key.
type flatEntry struct {
	value  value // Never a table
	secret bool
}

// String renders the entry for debug output, hiding secret values.
func (e flatEntry) String() string {
	if e.secret {
		return redactedMarker
	}
	return e.value.String()
}

type pendingNode struct {
	path  []string
	value value
}

// flattenValues walks the tree breadth-first with an explicit queue, so deeply
// nested tables never grow the call stack. Tables are expanded, every other
// value is stored under its dot-joined path. If two paths encode to the same
// key, the one visited last wins; sibling order is not defined.
func flattenValues(root map[string]value, secrets SecretsSpecifier) map[string]flatEntry {
	queue := make([]pendingNode, 0, len(root))
	for key, v := range root {
		queue = append(queue, pendingNode{path: []string{key}, value: v})
	}

	entries := make(map[string]flatEntry, len(root))
	for i := 0; i < len(queue); i++ {
		node := queue[i]
		if fields, ok := node.value.table(); ok {
			for key, child := range fields {
				queue = append(queue, pendingNode{
					path:  normalize.AppendComponent(node.path, key),
					value: child,
				})
			}
			continue
		}

		encodedKey := normalize.EncodeKey(node.path)
		entries[encodedKey] = flatEntry{
			value:  node.value,
			secret: secrets.IsSecret(encodedKey, node.value.String()),
		}
	}
	return entries
}
