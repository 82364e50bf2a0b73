package configtoml

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidData matches every error returned when a snapshot cannot be built from its input.
	ErrInvalidData = errors.New("configtoml: invalid data")

	// ErrNotConvertible matches every error returned when a value has the wrong kind for a lookup.
	ErrNotConvertible = errors.New("configtoml: value not convertible")
)

// InvalidDataError reports input that is not valid UTF-8, not valid TOML,
// or decodes to a node that has no configuration representation.
type InvalidDataError struct {
	Message string
	Err     error // Underlying decoder error, if any
}

// Error implements error.
func (e *InvalidDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid data: %s: %v", e.Message, e.Err)
	}
	return "invalid data: " + e.Message
}

// Unwrap returns the underlying decoder error.
func (e *InvalidDataError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidData.
func (e *InvalidDataError) Is(target error) bool { return target == ErrInvalidData }

// NotConvertibleError reports a stored value that cannot be produced as the requested type.
type NotConvertibleError struct {
	Key  string     // Encoded key (e.g., "server.port")
	Type ConfigType // Requested type
}

// Error implements error.
func (e *NotConvertibleError) Error() string {
	return fmt.Sprintf("config value not convertible: %s as %s", e.Key, e.Type)
}

// Is reports whether target is ErrNotConvertible.
func (e *NotConvertibleError) Is(target error) bool { return target == ErrNotConvertible }
