package normalize

import "strings"

// Separator joins key components in their encoded form.
const Separator = "."

// EncodeKey joins key components into a dot-separated path.
// Components are not escaped, so ["a.b"] and ["a", "b"] encode identically.
// Examples:
//   - ["server", "port"] → "server.port"
//   - ["title"] → "title"
//   - [] → ""
func EncodeKey(components []string) string {
	return strings.Join(components, Separator)
}

// SplitKey splits a dot-separated path into its components.
// Surrounding whitespace of the path is trimmed; an empty path has no components.
// Examples:
//   - "server.ssl.enabled" → ["server", "ssl", "enabled"]
//   - "title" → ["title"]
//   - "" → []
func SplitKey(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return []string{}
	}
	return strings.Split(path, Separator)
}

// AppendComponent returns a new component slice with key appended.
// The input slice is never modified, so sibling paths can share a parent.
func AppendComponent(parent []string, key string) []string {
	out := make([]string, len(parent), len(parent)+1)
	copy(out, parent)
	return append(out, key)
}
