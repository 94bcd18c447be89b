package univalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// Decode reads a single JSON value from r and builds a Value tree. Numbers
// are captured as their literal text so no precision is lost before a typed
// accessor narrows them. Input with trailing non-whitespace after the first
// top-level value is rejected.
func Decode(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes builds a Value tree from a byte slice.
func DecodeBytes(b []byte) (*Value, error) {
	// The streaming Token() API tolerates literals truncated at EOF ("tru",
	// "nul" decode as their completed forms), so the document is validated
	// as a whole before tokenizing.
	if !j.Valid(b) {
		return nil, fmt.Errorf("univalue: invalid JSON input")
	}

	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := decodeValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("univalue: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *j.Decoder, tok j.Token) (*Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("univalue: unexpected %q", t.String())
	case string:
		return NewStr(t), nil
	case j.Number:
		return &Value{kind: Num, val: string(t)}, nil
	case float64:
		// Not reached with UseNumber, kept as a safety net.
		return NewFloat64(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("univalue: unexpected token %v", tok)
	}
}

func decodeObject(dec *j.Decoder) (*Value, error) {
	o := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("univalue: object key is not a string")
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		// Duplicate keys: the last occurrence wins, at the position of the
		// first one.
		if err := o.Set(key, v); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return o, nil
}

func decodeArray(dec *j.Decoder) (*Value, error) {
	a := NewArray()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return a, nil
}
