package univalue_test

import (
	"testing"

	"github.com/reoring/univalue"
)

func num(t *testing.T, s string) *univalue.Value {
	t.Helper()
	v, err := univalue.NewNumStr(s)
	if err != nil {
		t.Fatalf("NewNumStr(%q): %v", s, err)
	}
	return v
}

func wantInvalidType(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected invalid-type error %q, got nil", msg)
	}
	ue, ok := univalue.AsError(err)
	if !ok {
		t.Fatalf("expected *univalue.Error, got %T: %v", err, err)
	}
	if ue.Code != univalue.CodeInvalidType {
		t.Fatalf("expected code %q, got %q", univalue.CodeInvalidType, ue.Code)
	}
	if ue.Message != msg {
		t.Fatalf("expected message %q, got %q", msg, ue.Message)
	}
}

func wantOutOfRange(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected out-of-range error %q, got nil", msg)
	}
	ue, ok := univalue.AsError(err)
	if !ok {
		t.Fatalf("expected *univalue.Error, got %T: %v", err, err)
	}
	if ue.Code != univalue.CodeOutOfRange {
		t.Fatalf("expected code %q, got %q", univalue.CodeOutOfRange, ue.Code)
	}
	if ue.Message != msg {
		t.Fatalf("expected message %q, got %q", msg, ue.Message)
	}
}

func TestNumericAccessors_TypeMismatchNeverRange(t *testing.T) {
	// Every non-Number value must fail with the type-mismatch error, never
	// the range error, even when the payload looks numeric.
	nonNumbers := []*univalue.Value{
		univalue.NewNull(),
		univalue.NewBool(true),
		univalue.NewStr("42"),
		univalue.NewObject(),
		univalue.NewArray(),
	}
	for _, v := range nonNumbers {
		if _, err := v.GetInt(); err == nil {
			t.Fatalf("GetInt on %v kind accepted", v.Kind())
		} else {
			wantInvalidType(t, err, "JSON value is not an integer as expected")
		}
		if _, err := v.GetInt64(); err == nil {
			t.Fatalf("GetInt64 on %v kind accepted", v.Kind())
		} else {
			wantInvalidType(t, err, "JSON value is not an integer as expected")
		}
		if _, err := v.GetUint64(); err == nil {
			t.Fatalf("GetUint64 on %v kind accepted", v.Kind())
		} else {
			wantInvalidType(t, err, "JSON value is not an integer as expected")
		}
		if _, err := v.GetUint8(); err == nil {
			t.Fatalf("GetUint8 on %v kind accepted", v.Kind())
		} else {
			wantInvalidType(t, err, "JSON value is not an integer as expected")
		}
		if _, err := v.GetFloat64(); err == nil {
			t.Fatalf("GetFloat64 on %v kind accepted", v.Kind())
		} else {
			wantInvalidType(t, err, "JSON value is not a number as expected")
		}
	}
}

func TestGetBool(t *testing.T) {
	b, err := univalue.NewBool(true).GetBool()
	if err != nil || b != true {
		t.Fatalf("GetBool = %v, %v", b, err)
	}
	_, err = univalue.NewStr("true").GetBool()
	wantInvalidType(t, err, "JSON value is not a boolean as expected")
}

func TestGetStr(t *testing.T) {
	s, err := univalue.NewStr("hello").GetStr()
	if err != nil || s != "hello" {
		t.Fatalf("GetStr = %q, %v", s, err)
	}
	_, err = univalue.NewBool(false).GetStr()
	wantInvalidType(t, err, "JSON value is not a string as expected")
}

func TestKeysValues(t *testing.T) {
	o := univalue.NewObject()
	if err := o.Set("a", univalue.NewInt(1)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := o.Set("b", univalue.NewStr("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	keys, err := o.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys = %v", keys)
	}

	vals, err := o.Values()
	if err != nil || len(vals) != 2 {
		t.Fatalf("Values = %v, %v", vals, err)
	}

	a := univalue.NewArray(univalue.NewInt(1), univalue.NewInt(2))
	if vals, err = a.Values(); err != nil || len(vals) != 2 {
		t.Fatalf("array Values = %v, %v", vals, err)
	}

	_, err = a.Keys()
	wantInvalidType(t, err, "JSON value is not an object as expected")
	_, err = univalue.NewStr("x").Values()
	wantInvalidType(t, err, "JSON value is not an object or array as expected")
}

func TestGetObjGetArr_Identity(t *testing.T) {
	o := univalue.NewObject()
	got, err := o.GetObj()
	if err != nil || got != o {
		t.Fatalf("GetObj = %p, %v; want identity %p", got, err, o)
	}
	a := univalue.NewArray()
	if got, err = a.GetArr(); err != nil || got != a {
		t.Fatalf("GetArr = %p, %v; want identity %p", got, err, a)
	}

	_, err = a.GetObj()
	wantInvalidType(t, err, "JSON value is not an object as expected")
	_, err = o.GetArr()
	wantInvalidType(t, err, "JSON value is not an array as expected")
}

func TestNarrowingAsymmetry(t *testing.T) {
	// The narrowing accessors reject the exact maximum of the target type,
	// while the full-width accessors accept their boundary values.
	if _, err := num(t, "255").GetUint8(); err == nil {
		t.Fatalf("GetUint8(255) accepted, want rejection of the boundary")
	} else {
		wantOutOfRange(t, err, "JSON integer out of range")
	}
	if n, err := num(t, "254").GetUint8(); err != nil || n != 254 {
		t.Fatalf("GetUint8(254) = %d, %v", n, err)
	}
	if _, err := num(t, "65535").GetUint16(); err == nil {
		t.Fatalf("GetUint16(65535) accepted, want rejection of the boundary")
	}
	if n, err := num(t, "65534").GetUint16(); err != nil || n != 65534 {
		t.Fatalf("GetUint16(65534) = %d, %v", n, err)
	}
	if _, err := num(t, "4294967295").GetUint32(); err == nil {
		t.Fatalf("GetUint32(4294967295) accepted, want rejection of the boundary")
	}
	if n, err := num(t, "4294967294").GetUint32(); err != nil || n != 4294967294 {
		t.Fatalf("GetUint32(4294967294) = %d, %v", n, err)
	}

	// Full-width accessors accept their exact boundaries.
	if n, err := num(t, "18446744073709551615").GetUint64(); err != nil || n != 18446744073709551615 {
		t.Fatalf("GetUint64(max) = %d, %v", n, err)
	}
	if n, err := num(t, "9223372036854775807").GetInt64(); err != nil || n != 9223372036854775807 {
		t.Fatalf("GetInt64(max) = %d, %v", n, err)
	}
	if n, err := num(t, "2147483647").GetInt(); err != nil || n != 2147483647 {
		t.Fatalf("GetInt(max) = %d, %v", n, err)
	}
}

func TestNumericAccessors_EndToEnd(t *testing.T) {
	v := num(t, "42")
	if n, err := v.GetInt(); err != nil || n != 42 {
		t.Fatalf("GetInt = %d, %v", n, err)
	}
	if n, err := v.GetInt64(); err != nil || n != 42 {
		t.Fatalf("GetInt64 = %d, %v", n, err)
	}
	if n, err := v.GetUint8(); err != nil || n != 42 {
		t.Fatalf("GetUint8 = %d, %v", n, err)
	}
	if f, err := v.GetFloat64(); err != nil || f != 42.0 {
		t.Fatalf("GetFloat64 = %g, %v", f, err)
	}

	neg := num(t, "-1")
	if _, err := neg.GetUint64(); err == nil {
		t.Fatalf("GetUint64(-1) accepted")
	} else {
		wantOutOfRange(t, err, "JSON integer out of range")
	}
	if n, err := neg.GetInt64(); err != nil || n != -1 {
		t.Fatalf("GetInt64(-1) = %d, %v", n, err)
	}
}

func TestGetInt_RangeAndFormatCollapse(t *testing.T) {
	// Out-of-width values and malformed text produce the same error.
	if _, err := num(t, "2147483648").GetInt(); err == nil {
		t.Fatalf("GetInt(2147483648) accepted")
	} else {
		wantOutOfRange(t, err, "JSON integer out of range")
	}
	if _, err := num(t, "1.5").GetInt(); err == nil {
		t.Fatalf("GetInt(1.5) accepted")
	} else {
		wantOutOfRange(t, err, "JSON integer out of range")
	}
}

func TestGetFloat64_OutOfRange(t *testing.T) {
	if _, err := num(t, "1e400").GetFloat64(); err == nil {
		t.Fatalf("GetFloat64(1e400) accepted")
	} else {
		wantOutOfRange(t, err, "JSON double out of range")
	}
	if f, err := num(t, "1.5e10").GetFloat64(); err != nil || f != 1.5e10 {
		t.Fatalf("GetFloat64(1.5e10) = %g, %v", f, err)
	}
}

func TestAccessors_Idempotent(t *testing.T) {
	v := num(t, "123")
	a, err1 := v.GetInt()
	b, err2 := v.GetInt()
	if err1 != nil || err2 != nil || a != b {
		t.Fatalf("GetInt not idempotent: %d/%v vs %d/%v", a, err1, b, err2)
	}
	if v.ValStr() != "123" {
		t.Fatalf("payload changed to %q", v.ValStr())
	}

	o := univalue.NewObject()
	_ = o.Set("k", univalue.NewInt(1))
	k1, _ := o.Keys()
	k2, _ := o.Keys()
	if len(k1) != len(k2) || k1[0] != k2[0] {
		t.Fatalf("Keys not idempotent: %v vs %v", k1, k2)
	}
}
