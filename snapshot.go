package configtoml

import (
	"sort"
	"strconv"
	"strings"
)

// redactedMarker replaces secret values in all diagnostic output.
const redactedMarker = "<REDACTED>"

// Snapshot is an immutable, point-in-time view of configuration values parsed from TOML.
// Nested tables are flattened to dot-separated keys when the snapshot is built.
// Safe for concurrent use; a reload builds a new Snapshot instead of mutating one.
type Snapshot struct {
	providerName string
	entries      map[string]flatEntry
	bytesDecoder BytesDecoder
}

// NewSnapshot parses UTF-8 TOML data into a snapshot.
// Returns an error matching ErrInvalidData if the data is not UTF-8 or not valid TOML.
func NewSnapshot(data []byte, providerName string, opts ParsingOptions) (*Snapshot, error) {
	opts = opts.withDefaults()

	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		providerName: providerName,
		entries:      flattenValues(root, opts.SecretsSpecifier),
		bytesDecoder: opts.BytesDecoder,
	}, nil
}

// NewSnapshotFromString parses TOML text into a snapshot.
func NewSnapshotFromString(text string, providerName string, opts ParsingOptions) (*Snapshot, error) {
	return NewSnapshot([]byte(text), providerName, opts)
}

// ProviderName returns the name the snapshot was created with.
func (s *Snapshot) ProviderName() string {
	return s.providerName
}

// Len returns the number of flattened values.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Keys returns all encoded keys in ascending order.
func (s *Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the value stored at key converted to typ.
// A missing key is not an error: the result has a nil Value.
// A present key of the wrong kind returns a *NotConvertibleError.
func (s *Snapshot) Lookup(key AbsoluteKey, typ ConfigType) (LookupResult, error) {
	encodedKey := key.String()
	entry, ok := s.entries[encodedKey]
	if !ok {
		return LookupResult{EncodedKey: encodedKey}, nil
	}

	cv, err := convertEntry(entry, encodedKey, typ, s.bytesDecoder)
	if err != nil {
		return LookupResult{}, err
	}
	return LookupResult{EncodedKey: encodedKey, Value: &cv}, nil
}

// String returns a short description: "name[N values]".
func (s *Snapshot) String() string {
	return s.providerName + "[" + strconv.Itoa(len(s.entries)) + " values]"
}

// DebugString lists every entry sorted by key, with secrets redacted:
// "name[N values: a=1, b=x]". An empty snapshot renders as "name[0 values: ]".
func (s *Snapshot) DebugString() string {
	keys := s.Keys()
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + s.entries[k].String()
	}
	return s.providerName + "[" + strconv.Itoa(len(s.entries)) + " values: " + strings.Join(pairs, ", ") + "]"
}

// GoString implements fmt.GoStringer so %#v prints DebugString.
func (s *Snapshot) GoString() string {
	return s.DebugString()
}
