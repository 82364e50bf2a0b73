package configtoml

import "math"

// convertEntry produces the requested type from a stored entry. Kinds must
// match exactly: integers never satisfy double, strings never satisfy int,
// and an array converts only if every element does.
func convertEntry(entry flatEntry, key string, typ ConfigType, decoder BytesDecoder) (ConfigValue, error) {
	mismatch := &NotConvertibleError{Key: key, Type: typ}
	v := entry.value

	var content any
	var ok bool
	switch typ {
	case TypeString:
		content, ok = asString(v)
	case TypeInt:
		content, ok = asInt(v)
	case TypeDouble:
		content, ok = asDouble(v)
	case TypeBool:
		content, ok = asBool(v)
	case TypeBytes:
		content, ok = asBytes(v, decoder)
	case TypeStringArray:
		content, ok = mapArray(v, asString)
	case TypeIntArray:
		content, ok = mapArray(v, asInt)
	case TypeDoubleArray:
		content, ok = mapArray(v, asDouble)
	case TypeBoolArray:
		content, ok = mapArray(v, asBool)
	case TypeByteChunkArray:
		content, ok = mapArray(v, func(item value) ([]byte, bool) {
			return asBytes(item, decoder)
		})
	}
	if !ok {
		return ConfigValue{}, mismatch
	}

	return ConfigValue{Type: typ, Value: content, Secret: entry.secret}, nil
}

// mapArray converts every element of an array value or fails as a whole.
func mapArray[T any](v value, convert func(value) (T, bool)) ([]T, bool) {
	items, ok := v.array()
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		c, ok := convert(item)
		if !ok {
			return nil, false
		}
		out = append(out, c)
	}
	return out, true
}

// asString accepts strings and the four date/time kinds, which have no
// configuration type of their own.
func asString(v value) (string, bool) {
	if v.kind == kindString || v.isDateTime() {
		return v.String(), true
	}
	return "", false
}

func asInt(v value) (int, bool) {
	i, ok := v.data.(int64)
	if !ok || v.kind != kindInteger {
		return 0, false
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

func asDouble(v value) (float64, bool) {
	f, ok := v.data.(float64)
	return f, ok && v.kind == kindFloat
}

func asBool(v value) (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok && v.kind == kindBoolean
}

func asBytes(v value, decoder BytesDecoder) ([]byte, bool) {
	s, ok := v.data.(string)
	if !ok || v.kind != kindString {
		return nil, false
	}
	return decoder.DecodeBytes(s)
}
