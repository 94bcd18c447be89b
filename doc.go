package univalue

// Package univalue provides:
//
// - A string-backed JSON value type (Value) with a tagged-union Kind
// - Strict, locale-independent numeric parsers (ParseInt32/ParseInt64/ParseUint64/ParseDouble)
// - Typed accessors that validate the kind before extracting (GetInt, GetStr, GetObj, ...)
// - A stable error model via *Error (code + message)
// - Decode/Encode between Value trees and JSON text, plus a YAML import bridge
//
// Design policy:
// - Numbers are stored as their literal decimal text, never as native machine
//   numbers, so nothing is lost before an accessor narrows them.
// - Accessors are read-only and never mutate the tree. Concurrent reads are
//   safe as long as no goroutine mutates the same tree at the same time; the
//   package adds no locking of its own.
// - Keep only public APIs in the root package; place the CLI under cmd/univalue.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := univalue.DecodeBytes(data)
//	n, err := v.Find("count")
//	c, err := n.GetUint32()
