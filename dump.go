package configtoml

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format dumpFormat
	indent string // Indentation for JSON output (default: "  ")
}

// AsJSON outputs the snapshot as a flat JSON object keyed by encoded key.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs the snapshot as a flat YAML mapping keyed by encoded key.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// Dump writes every entry of the snapshot sorted by key.
// Secret values are written as "<REDACTED>" in every format.
// Text format is one "key: value" line per entry, with strings quoted.
func Dump(w io.Writer, s *Snapshot, opts ...DumpOption) error {
	if s == nil {
		return fmt.Errorf("snapshot is nil")
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch config.format {
	case formatJSON:
		return dumpAsJSON(w, s, config)
	case formatYAML:
		return dumpAsYAML(w, s)
	default:
		return dumpAsText(w, s)
	}
}

func dumpAsText(w io.Writer, s *Snapshot) error {
	for _, key := range s.Keys() {
		entry := s.entries[key]
		display := redactedMarker
		if !entry.secret {
			display = entry.value.String()
			if entry.value.kind == kindString {
				display = strconv.Quote(display)
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, display); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func dumpAsJSON(w io.Writer, s *Snapshot, config dumpConfig) error {
	result := naturalMap(s)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(result, "", config.indent)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dumpAsYAML(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(naturalMap(s)); err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// naturalMap returns entries as encoder-friendly Go values with secrets redacted.
func naturalMap(s *Snapshot) map[string]any {
	result := make(map[string]any, len(s.entries))
	for key, entry := range s.entries {
		if entry.secret {
			result[key] = redactedMarker
			continue
		}
		result[key] = naturalValue(entry.value)
	}
	return result
}

// naturalValue maps a value to string, int64, float64, bool, []any or map[string]any.
// Date/time values and non-finite floats use their canonical rendering.
func naturalValue(v value) any {
	switch v.kind {
	case kindInteger, kindBoolean, kindString:
		return v.data
	case kindFloat:
		f := v.data.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v.String()
		}
		return f
	case kindArray:
		items, _ := v.array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = naturalValue(item)
		}
		return out
	case kindTable:
		fields, _ := v.table()
		out := make(map[string]any, len(fields))
		for k, child := range fields {
			out[k] = naturalValue(child)
		}
		return out
	default:
		return v.String()
	}
}
