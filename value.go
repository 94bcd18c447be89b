package univalue

import (
	"fmt"
	"strconv"
)

// Kind is the active variant discriminator of a Value.
type Kind int

const (
	Null Kind = iota
	Obj
	Arr
	Str
	Num
	Bool
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Obj:
		return "object"
	case Arr:
		return "array"
	case Str:
		return "string"
	case Num:
		return "number"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the JSON variants. Exactly one kind is active
// at a time. Number and String payloads live in val as literal text; numbers
// keep their canonical decimal form and are only converted by the typed
// accessors. Object entries are kept as parallel keys/values slices in
// insertion order, with unique keys matching the value at the same index.
// Child values belong exclusively to their parent.
type Value struct {
	kind   Kind
	val    string
	b      bool
	keys   []string
	values []*Value
}

// NewNull returns a Null value.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a Boolean value.
func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

// NewStr returns a String value holding s.
func NewStr(s string) *Value { return &Value{kind: Str, val: s} }

// NewObject returns an empty Object value.
func NewObject() *Value { return &Value{kind: Obj} }

// NewArray returns an Array value holding the given elements.
func NewArray(vs ...*Value) *Value {
	a := &Value{kind: Arr}
	for _, v := range vs {
		a.values = append(a.values, orNull(v))
	}
	return a
}

// NewInt returns a Number value holding the decimal text of i.
func NewInt(i int) *Value { return NewInt64(int64(i)) }

// NewInt64 returns a Number value holding the decimal text of i.
func NewInt64(i int64) *Value {
	return &Value{kind: Num, val: strconv.FormatInt(i, 10)}
}

// NewUint64 returns a Number value holding the decimal text of u.
func NewUint64(u uint64) *Value {
	return &Value{kind: Num, val: strconv.FormatUint(u, 10)}
}

// NewFloat64 returns a Number value holding the shortest round-trip decimal
// text of f.
func NewFloat64(f float64) *Value {
	return &Value{kind: Num, val: strconv.FormatFloat(f, 'g', -1, 64)}
}

// NewNumStr returns a Number value holding s verbatim. The text must follow
// the JSON number grammar; anything else is rejected so that the stored
// payload stays trustworthy for the numeric accessors.
func NewNumStr(s string) (*Value, error) {
	if !isJSONNumber(s) {
		return nil, fmt.Errorf("univalue: %q is not a valid JSON number", s)
	}
	return &Value{kind: Num, val: s}, nil
}

// Kind reports the active variant.
func (v *Value) Kind() Kind { return v.kind }

// ValStr returns the raw stored text: the literal numeric text for Number
// values and the string content for String values. Empty for other kinds.
func (v *Value) ValStr() string { return v.val }

func (v *Value) IsNull() bool   { return v.kind == Null }
func (v *Value) IsBool() bool   { return v.kind == Bool }
func (v *Value) IsTrue() bool   { return v.kind == Bool && v.b }
func (v *Value) IsFalse() bool  { return v.kind == Bool && !v.b }
func (v *Value) IsNum() bool    { return v.kind == Num }
func (v *Value) IsStr() bool    { return v.kind == Str }
func (v *Value) IsObject() bool { return v.kind == Obj }
func (v *Value) IsArray() bool  { return v.kind == Arr }

// Len reports the number of entries of an Object or elements of an Array,
// and 0 for every other kind.
func (v *Value) Len() int { return len(v.values) }

// Set stores val under key in an Object. An existing key is replaced in
// place, keeping its original position; a new key is appended. A nil val is
// stored as Null.
func (v *Value) Set(key string, val *Value) error {
	if !v.IsObject() {
		return errNotObject
	}
	val = orNull(val)
	for i, k := range v.keys {
		if k == key {
			v.values[i] = val
			return nil
		}
	}
	v.keys = append(v.keys, key)
	v.values = append(v.values, val)
	return nil
}

// Append adds elements to the end of an Array. Nil elements are stored as
// Null.
func (v *Value) Append(vs ...*Value) error {
	if !v.IsArray() {
		return errNotArray
	}
	for _, e := range vs {
		v.values = append(v.values, orNull(e))
	}
	return nil
}

// Find returns the value stored under key in an Object. The second result is
// false when the key is absent or the value is not an Object.
func (v *Value) Find(key string) (*Value, bool) {
	if !v.IsObject() {
		return nil, false
	}
	for i, k := range v.keys {
		if k == key {
			return v.values[i], true
		}
	}
	return nil, false
}

// Exists reports whether an Object holds the given key.
func (v *Value) Exists(key string) bool {
	_, ok := v.Find(key)
	return ok
}

// Index returns the i-th element of an Array, or the i-th entry value of an
// Object in insertion order. It returns nil when i is out of bounds or the
// kind holds no children.
func (v *Value) Index(i int) *Value {
	if i < 0 || i >= len(v.values) {
		return nil
	}
	return v.values[i]
}

func orNull(v *Value) *Value {
	if v == nil {
		return NewNull()
	}
	return v
}

// isJSONNumber checks s against the JSON number grammar: optional minus, an
// integer part without redundant leading zeros, optional fraction, optional
// exponent.
func isJSONNumber(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		for i < n && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < n && s[i] == '.' {
		i++
		if i >= n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
