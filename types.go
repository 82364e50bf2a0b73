package configtoml

import (
	"fmt"

	"github.com/Azhovan/configtoml/internal/normalize"
)

// ConfigType identifies the typed result a lookup should produce.
type ConfigType int

const (
	TypeString ConfigType = iota
	TypeInt
	TypeDouble
	TypeBool
	TypeBytes
	TypeStringArray
	TypeIntArray
	TypeDoubleArray
	TypeBoolArray
	TypeByteChunkArray
)

var configTypeNames = [...]string{
	TypeString:         "string",
	TypeInt:            "int",
	TypeDouble:         "double",
	TypeBool:           "bool",
	TypeBytes:          "bytes",
	TypeStringArray:    "stringArray",
	TypeIntArray:       "intArray",
	TypeDoubleArray:    "doubleArray",
	TypeBoolArray:      "boolArray",
	TypeByteChunkArray: "byteChunkArray",
}

// String returns the type name used by ParseConfigType, or "ConfigType(N)" for
// values outside the defined range.
func (t ConfigType) String() string {
	if t >= 0 && int(t) < len(configTypeNames) {
		return configTypeNames[t]
	}
	return fmt.Sprintf("ConfigType(%d)", int(t))
}

// ParseConfigType returns the ConfigType with the given name (e.g., "intArray").
func ParseConfigType(name string) (ConfigType, error) {
	for i, n := range configTypeNames {
		if n == name {
			return ConfigType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown config type %q", name)
}

// AbsoluteKey is a fully-qualified configuration path (e.g., ["server", "ssl", "enabled"]).
type AbsoluteKey []string

// ParseKey splits a dot-separated path into an AbsoluteKey.
func ParseKey(path string) AbsoluteKey {
	return AbsoluteKey(normalize.SplitKey(path))
}

// String returns the encoded form of the key.
func (k AbsoluteKey) String() string {
	return normalize.EncodeKey(k)
}

// ConfigValue is a typed configuration result.
//
// Value holds one of: string, int, float64, bool, []byte, []string, []int,
// []float64, []bool, [][]byte, matching Type.
type ConfigValue struct {
	Type   ConfigType
	Value  any
	Secret bool
}

// LookupResult is the outcome of a snapshot lookup.
// A nil Value means the key is absent.
type LookupResult struct {
	EncodedKey string
	Value      *ConfigValue
}

// Lookuper provides typed lookups by key. Implemented by *Snapshot and sourcefile.Provider.
type Lookuper interface {
	Lookup(key AbsoluteKey, typ ConfigType) (LookupResult, error)
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}
