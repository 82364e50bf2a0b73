package configtoml

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Azhovan/configtoml/internal/normalize"
	"github.com/pelletier/go-toml/v2"
)

// decodeDocument parses TOML text into the root table of a value tree.
// The decoder tags every node by its TOML grammar type, so classification
// is a single type switch with no trial decoding.
func decodeDocument(data []byte) (map[string]value, error) {
	if !utf8.Valid(data) {
		return nil, &InvalidDataError{Message: "unable to decode data as UTF-8"}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, &InvalidDataError{
				Message: fmt.Sprintf("malformed TOML at line %d, column %d", row, col),
				Err:     err,
			}
		}
		return nil, &InvalidDataError{Message: "malformed TOML", Err: err}
	}

	root, err := convertTable(raw, nil)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func convertTable(raw map[string]any, path []string) (map[string]value, error) {
	fields := make(map[string]value, len(raw))
	for key, node := range raw {
		v, err := convertNode(node, normalize.AppendComponent(path, key))
		if err != nil {
			return nil, err
		}
		fields[key] = v
	}
	return fields, nil
}

func convertNode(node any, path []string) (value, error) {
	switch n := node.(type) {
	case string:
		return stringValue(n), nil
	case int64:
		return integerValue(n), nil
	case float64:
		return floatValue(n), nil
	case bool:
		return booleanValue(n), nil
	case time.Time:
		return offsetDateTimeValue(n), nil
	case toml.LocalDateTime:
		return localDateTimeValue(n), nil
	case toml.LocalDate:
		return localDateValue(n), nil
	case toml.LocalTime:
		return localTimeValue(n), nil
	case []any:
		items := make([]value, len(n))
		for i, item := range n {
			v, err := convertNode(item, path)
			if err != nil {
				return value{}, err
			}
			items[i] = v
		}
		return arrayValue(items), nil
	case map[string]any:
		fields, err := convertTable(n, path)
		if err != nil {
			return value{}, err
		}
		return tableValue(fields), nil
	case nil:
		return value{}, &InvalidDataError{Message: fmt.Sprintf("unexpected nil value at %q", normalize.EncodeKey(path))}
	default:
		return value{}, &InvalidDataError{Message: fmt.Sprintf("unsupported TOML value of type %T at %q", node, normalize.EncodeKey(path))}
	}
}
