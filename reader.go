package configtoml

import "fmt"

// Reader reads typed values by dot-separated key from a Lookuper.
//
// Absent keys return an unset Optional and no error, so callers can apply
// defaults with OrDefault. Keys of the wrong kind return a *NotConvertibleError.
type Reader struct {
	src Lookuper
}

// NewReader creates a Reader over a snapshot or provider.
func NewReader(src Lookuper) *Reader {
	return &Reader{src: src}
}

// String reads a string value. Date and time literals are returned in their string form.
func (r *Reader) String(key string) (Optional[string], error) {
	return read[string](r, key, TypeString)
}

// Int reads an integer value.
func (r *Reader) Int(key string) (Optional[int], error) {
	return read[int](r, key, TypeInt)
}

// Double reads a float value. TOML integers are not accepted.
func (r *Reader) Double(key string) (Optional[float64], error) {
	return read[float64](r, key, TypeDouble)
}

// Bool reads a boolean value.
func (r *Reader) Bool(key string) (Optional[bool], error) {
	return read[bool](r, key, TypeBool)
}

// Bytes reads a string value and decodes it with the snapshot's bytes decoder.
func (r *Reader) Bytes(key string) (Optional[[]byte], error) {
	return read[[]byte](r, key, TypeBytes)
}

// StringArray reads an array of strings.
func (r *Reader) StringArray(key string) (Optional[[]string], error) {
	return read[[]string](r, key, TypeStringArray)
}

// IntArray reads an array of integers.
func (r *Reader) IntArray(key string) (Optional[[]int], error) {
	return read[[]int](r, key, TypeIntArray)
}

// DoubleArray reads an array of floats.
func (r *Reader) DoubleArray(key string) (Optional[[]float64], error) {
	return read[[]float64](r, key, TypeDoubleArray)
}

// BoolArray reads an array of booleans.
func (r *Reader) BoolArray(key string) (Optional[[]bool], error) {
	return read[[]bool](r, key, TypeBoolArray)
}

// ByteChunkArray reads an array of strings, decoding each one to bytes.
func (r *Reader) ByteChunkArray(key string) (Optional[[][]byte], error) {
	return read[[][]byte](r, key, TypeByteChunkArray)
}

func read[T any](r *Reader, key string, typ ConfigType) (Optional[T], error) {
	res, err := r.src.Lookup(ParseKey(key), typ)
	if err != nil {
		return Optional[T]{}, err
	}
	if res.Value == nil {
		return Optional[T]{}, nil
	}

	v, ok := res.Value.Value.(T)
	if !ok {
		return Optional[T]{}, fmt.Errorf("lookup %s as %s returned %T", res.EncodedKey, typ, res.Value.Value)
	}
	return Optional[T]{Value: v, Set: true}, nil
}
