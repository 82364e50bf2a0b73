package configtoml

import (
	"errors"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntry_Success(t *testing.T) {
	offset := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		value    value
		typ      ConfigType
		expected any
	}{
		{name: "string", value: stringValue("Hello"), typ: TypeString, expected: "Hello"},
		{name: "offset datetime as string", value: offsetDateTimeValue(offset), typ: TypeString, expected: "2024-01-02T03:04:05Z"},
		{name: "local date as string", value: localDateValue(toml.LocalDate{Year: 2024, Month: 1, Day: 2}), typ: TypeString, expected: "2024-01-02"},
		{name: "local time as string", value: localTimeValue(toml.LocalTime{Hour: 3, Minute: 4, Second: 5}), typ: TypeString, expected: "03:04:05"},
		{name: "int", value: integerValue(42), typ: TypeInt, expected: 42},
		{name: "negative int", value: integerValue(-7), typ: TypeInt, expected: -7},
		{name: "double", value: floatValue(3.14), typ: TypeDouble, expected: 3.14},
		{name: "bool", value: booleanValue(true), typ: TypeBool, expected: true},
		{name: "bytes", value: stringValue("bWFnaWM="), typ: TypeBytes, expected: []byte("magic")},
		{
			name:     "string array",
			value:    arrayValue([]value{stringValue("a"), stringValue("b")}),
			typ:      TypeStringArray,
			expected: []string{"a", "b"},
		},
		{
			name:     "string array with dates",
			value:    arrayValue([]value{stringValue("a"), localDateValue(toml.LocalDate{Year: 2024, Month: 1, Day: 2})}),
			typ:      TypeStringArray,
			expected: []string{"a", "2024-01-02"},
		},
		{
			name:     "int array",
			value:    arrayValue([]value{integerValue(1), integerValue(2)}),
			typ:      TypeIntArray,
			expected: []int{1, 2},
		},
		{
			name:     "double array",
			value:    arrayValue([]value{floatValue(0.5), floatValue(1.5)}),
			typ:      TypeDoubleArray,
			expected: []float64{0.5, 1.5},
		},
		{
			name:     "bool array",
			value:    arrayValue([]value{booleanValue(false), booleanValue(true)}),
			typ:      TypeBoolArray,
			expected: []bool{false, true},
		},
		{
			name:     "byte chunk array",
			value:    arrayValue([]value{stringValue("bWFnaWM="), stringValue("bWFnaWMy")}),
			typ:      TypeByteChunkArray,
			expected: [][]byte{[]byte("magic"), []byte("magic2")},
		},
		{name: "empty array as int array", value: arrayValue([]value{}), typ: TypeIntArray, expected: []int{}},
		{name: "empty array as string array", value: arrayValue(nil), typ: TypeStringArray, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := convertEntry(flatEntry{value: tt.value}, "key", tt.typ, Base64)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, cv.Type)
			assert.Equal(t, tt.expected, cv.Value)
			assert.False(t, cv.Secret)
		})
	}
}

func TestConvertEntry_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		value value
		typ   ConfigType
	}{
		{name: "int as double", value: integerValue(1), typ: TypeDouble},
		{name: "double as int", value: floatValue(1), typ: TypeInt},
		{name: "int as string", value: integerValue(1), typ: TypeString},
		{name: "string as int", value: stringValue("1"), typ: TypeInt},
		{name: "string as bool", value: stringValue("true"), typ: TypeBool},
		{name: "bool as string", value: booleanValue(true), typ: TypeString},
		{name: "invalid base64", value: stringValue("not base64!"), typ: TypeBytes},
		{name: "int as bytes", value: integerValue(1), typ: TypeBytes},
		{name: "date as bytes", value: localDateValue(toml.LocalDate{Year: 2024, Month: 1, Day: 2}), typ: TypeBytes},
		{name: "scalar as array", value: integerValue(1), typ: TypeIntArray},
		{name: "array as scalar", value: arrayValue([]value{integerValue(1)}), typ: TypeInt},
		{name: "array as string", value: arrayValue([]value{stringValue("a")}), typ: TypeString},
		{name: "mixed as int array", value: arrayValue([]value{integerValue(1), stringValue("two"), integerValue(3)}), typ: TypeIntArray},
		{name: "mixed as string array", value: arrayValue([]value{integerValue(1), stringValue("two")}), typ: TypeStringArray},
		{name: "ints as double array", value: arrayValue([]value{integerValue(1), integerValue(2)}), typ: TypeDoubleArray},
		{name: "one bad chunk", value: arrayValue([]value{stringValue("bWFnaWM="), stringValue("%%%")}), typ: TypeByteChunkArray},
		{name: "array of tables", value: arrayValue([]value{tableValue(map[string]value{})}), typ: TypeStringArray},
		{name: "unknown type", value: stringValue("x"), typ: ConfigType(99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := convertEntry(flatEntry{value: tt.value}, "some.key", tt.typ, Base64)
			require.Error(t, err)
			assert.Nil(t, cv.Value)
			assert.True(t, errors.Is(err, ErrNotConvertible))

			var nce *NotConvertibleError
			require.True(t, errors.As(err, &nce))
			assert.Equal(t, "some.key", nce.Key)
			assert.Equal(t, tt.typ, nce.Type)
		})
	}
}

func TestConvertEntry_CarriesSecretFlag(t *testing.T) {
	cv, err := convertEntry(flatEntry{value: stringValue("hunter2"), secret: true}, "password", TypeString, Base64)
	require.NoError(t, err)
	assert.True(t, cv.Secret)
	assert.Equal(t, "hunter2", cv.Value)
}

func TestConvertEntry_CustomBytesDecoder(t *testing.T) {
	entry := flatEntry{value: stringValue("6d61676963")}

	cv, err := convertEntry(entry, "k", TypeBytes, Hex)
	require.NoError(t, err)
	assert.Equal(t, []byte("magic"), cv.Value)

	_, err = convertEntry(entry, "k", TypeBytes, BytesDecoderFunc(func(string) ([]byte, bool) {
		return nil, false
	}))
	assert.ErrorIs(t, err, ErrNotConvertible)
}
