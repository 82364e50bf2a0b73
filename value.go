package configtoml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// valueKind tags the variant held by a value.
type valueKind int

const (
	kindString valueKind = iota
	kindInteger
	kindFloat
	kindBoolean
	kindOffsetDateTime
	kindLocalDateTime
	kindLocalDate
	kindLocalTime
	kindArray
	kindTable
)

// value is a decoded TOML node. data holds, by kind:
// string, int64, float64, bool, time.Time, toml.LocalDateTime,
// toml.LocalDate, toml.LocalTime, []value, map[string]value.
type value struct {
	kind valueKind
	data any
}

func stringValue(s string) value { return value{kind: kindString, data: s} }
func integerValue(i int64) value { return value{kind: kindInteger, data: i} }
func floatValue(f float64) value { return value{kind: kindFloat, data: f} }
func booleanValue(b bool) value { return value{kind: kindBoolean, data: b} }
func offsetDateTimeValue(t time.Time) value { return value{kind: kindOffsetDateTime, data: t} }
func localDateTimeValue(d toml.LocalDateTime) value { return value{kind: kindLocalDateTime, data: d} }
func localDateValue(d toml.LocalDate) value { return value{kind: kindLocalDate, data: d} }
func localTimeValue(t toml.LocalTime) value { return value{kind: kindLocalTime, data: t} }
func arrayValue(items []value) value { return value{kind: kindArray, data: items} }
func tableValue(fields map[string]value) value { return value{kind: kindTable, data: fields} }

func (v value) isDateTime() bool {
	switch v.kind {
	case kindOffsetDateTime, kindLocalDateTime, kindLocalDate, kindLocalTime:
		return true
	}
	return false
}

func (v value) array() ([]value, bool) {
	items, ok := v.data.([]value)
	return items, ok && v.kind == kindArray
}

func (v value) table() (map[string]value, bool) {
	fields, ok := v.data.(map[string]value)
	return fields, ok && v.kind == kindTable
}

// String renders the value in its canonical form. This form is what secret
// specifiers see, what debug output prints, and what date/time values coerce to.
func (v value) String() string {
	switch v.kind {
	case kindString:
		return v.data.(string)
	case kindInteger:
		return strconv.FormatInt(v.data.(int64), 10)
	case kindFloat:
		return FormatDouble(v.data.(float64))
	case kindBoolean:
		return strconv.FormatBool(v.data.(bool))
	case kindOffsetDateTime:
		return v.data.(time.Time).UTC().Format(time.RFC3339)
	case kindLocalDateTime:
		d := v.data.(toml.LocalDateTime)
		return formatLocalDate(d.LocalDate) + "T" + formatLocalTime(d.LocalTime)
	case kindLocalDate:
		return formatLocalDate(v.data.(toml.LocalDate))
	case kindLocalTime:
		return formatLocalTime(v.data.(toml.LocalTime))
	case kindArray:
		items := v.data.([]value)
		if len(items) == 0 {
			return "[]"
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case kindTable:
		return "{...}"
	default:
		return fmt.Sprintf("<unknown kind %d>", int(v.kind))
	}
}

// FormatDouble renders a double the way snapshots display it: the shortest
// decimal that round-trips, with a fractional part kept on integral values
// (2 renders as "2.0"), and "inf", "-inf" or "nan" for non-finite values.
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatLocalDate(d toml.LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatLocalTime(t toml.LocalTime) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
