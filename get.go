package univalue

import "math"

// Typed accessors. Each one validates the active kind and then extracts the
// payload; numeric accessors additionally run the stored text through the
// strict parsers. They are stateless and read-only: calling one twice on an
// unmodified value yields identical results.

// Keys returns an Object's key sequence. The slice is shared with the value;
// callers must treat it as read-only.
func (v *Value) Keys() ([]string, error) {
	if !v.IsObject() {
		return nil, errNotObject
	}
	return v.keys, nil
}

// Values returns the child values of an Object or Array. The slice is shared
// with the value; callers must treat it as read-only.
func (v *Value) Values() ([]*Value, error) {
	if !v.IsObject() && !v.IsArray() {
		return nil, errNotObjectOrArray
	}
	return v.values, nil
}

// GetBool returns the stored boolean.
func (v *Value) GetBool() (bool, error) {
	if !v.IsBool() {
		return false, errNotBool
	}
	return v.b, nil
}

// GetStr returns the stored string.
func (v *Value) GetStr() (string, error) {
	if !v.IsStr() {
		return "", errNotString
	}
	return v.val, nil
}

// GetInt parses the stored numeric text as an int32.
func (v *Value) GetInt() (int32, error) {
	if !v.IsNum() {
		return 0, errNotInteger
	}
	n, ok := ParseInt32(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	return n, nil
}

// GetInt64 parses the stored numeric text as an int64.
func (v *Value) GetInt64() (int64, error) {
	if !v.IsNum() {
		return 0, errNotInteger
	}
	n, ok := ParseInt64(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	return n, nil
}

// GetUint64 parses the stored numeric text as a uint64.
func (v *Value) GetUint64() (uint64, error) {
	if v.kind != Num {
		return 0, errNotInteger
	}
	n, ok := ParseUint64(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	return n, nil
}

// GetUint32 parses the stored numeric text into a 64-bit holder and narrows
// it to uint32. The narrowing accessors reject the exact maximum of the
// target type (>= max), unlike the full-width accessors which accept their
// boundary values. The asymmetry is kept on purpose.
func (v *Value) GetUint32() (uint32, error) {
	if v.kind != Num {
		return 0, errNotInteger
	}
	n, ok := ParseUint64(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	if n >= math.MaxUint32 {
		return 0, errIntOutOfRange
	}
	return uint32(n), nil
}

// GetUint16 narrows like GetUint32, against the uint16 maximum.
func (v *Value) GetUint16() (uint16, error) {
	if v.kind != Num {
		return 0, errNotInteger
	}
	n, ok := ParseUint64(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	if n >= math.MaxUint16 {
		return 0, errIntOutOfRange
	}
	return uint16(n), nil
}

// GetUint8 narrows like GetUint32, against the uint8 maximum.
func (v *Value) GetUint8() (uint8, error) {
	if v.kind != Num {
		return 0, errNotInteger
	}
	n, ok := ParseUint64(v.val)
	if !ok {
		return 0, errIntOutOfRange
	}
	if n >= math.MaxUint8 {
		return 0, errIntOutOfRange
	}
	return uint8(n), nil
}

// GetFloat64 parses the stored numeric text as an IEEE double.
func (v *Value) GetFloat64() (float64, error) {
	if !v.IsNum() {
		return 0, errNotNumber
	}
	f, ok := ParseDouble(v.val)
	if !ok {
		return 0, errDoubleOutOfRange
	}
	return f, nil
}

// GetObj returns the value itself once it is known to be an Object, so
// object-specific operations can follow without re-checking.
func (v *Value) GetObj() (*Value, error) {
	if !v.IsObject() {
		return nil, errNotObject
	}
	return v, nil
}

// GetArr is the Array counterpart of GetObj.
func (v *Value) GetArr() (*Value, error) {
	if !v.IsArray() {
		return nil, errNotArray
	}
	return v, nil
}
