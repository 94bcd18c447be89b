package univalue

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

var (
	nullBytes         = []byte("null")
	trueBytes         = []byte("true")
	falseBytes        = []byte("false")
	leftBracketBytes  = []byte("[")
	rightBracketBytes = []byte("]")
	leftCurlyBytes    = []byte("{")
	rightCurlyBytes   = []byte("}")
	commaBytes        = []byte(",")
	colonBytes        = []byte(":")
	colonSpaceBytes   = []byte(": ")
	newlineBytes      = []byte("\n")
	spaceBytes        = []byte("                                ")
)

// WriteTo writes the value as compact JSON. Value implements io.WriterTo.
func (v *Value) WriteTo(w io.Writer) (int64, error) {
	var written int64
	err := v.write(w, 0, 0, &written)
	return written, err
}

// WriteIndent writes the value as JSON, pretty-printed with the given number
// of spaces per nesting level. indent <= 0 produces compact output.
func (v *Value) WriteIndent(w io.Writer, indent int) (int64, error) {
	var written int64
	err := v.write(w, indent, 0, &written)
	return written, err
}

// MarshalJSON renders compact JSON, making Value usable wherever an
// encoding/json-compatible marshaler is expected.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := v.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders compact JSON for debugging.
func (v *Value) String() string {
	var buf bytes.Buffer
	if _, err := v.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (v *Value) write(w io.Writer, indent, level int, written *int64) error {
	switch v.kind {
	case Null:
		return writeSafe(w, nullBytes, written)
	case Bool:
		if v.b {
			return writeSafe(w, trueBytes, written)
		}
		return writeSafe(w, falseBytes, written)
	case Num:
		return writeSafe(w, []byte(v.val), written)
	case Str:
		data, err := marshalString(v.val)
		if err != nil {
			return err
		}
		return writeSafe(w, data, written)
	case Arr:
		return v.writeArray(w, indent, level, written)
	case Obj:
		return v.writeObject(w, indent, level, written)
	}
	return writeSafe(w, nullBytes, written)
}

func (v *Value) writeArray(w io.Writer, indent, level int, written *int64) error {
	if err := writeSafe(w, leftBracketBytes, written); err != nil {
		return err
	}
	for i, e := range v.values {
		if err := writeSeparator(w, i, indent, level+1, written); err != nil {
			return err
		}
		if err := e.write(w, indent, level+1, written); err != nil {
			return err
		}
	}
	if err := writeClose(w, len(v.values), indent, level, written); err != nil {
		return err
	}
	return writeSafe(w, rightBracketBytes, written)
}

func (v *Value) writeObject(w io.Writer, indent, level int, written *int64) error {
	if err := writeSafe(w, leftCurlyBytes, written); err != nil {
		return err
	}
	for i, k := range v.keys {
		if err := writeSeparator(w, i, indent, level+1, written); err != nil {
			return err
		}
		data, err := marshalString(k)
		if err != nil {
			return err
		}
		if err := writeSafe(w, data, written); err != nil {
			return err
		}
		if indent > 0 {
			err = writeSafe(w, colonSpaceBytes, written)
		} else {
			err = writeSafe(w, colonBytes, written)
		}
		if err != nil {
			return err
		}
		if err := v.values[i].write(w, indent, level+1, written); err != nil {
			return err
		}
	}
	if err := writeClose(w, len(v.keys), indent, level, written); err != nil {
		return err
	}
	return writeSafe(w, rightCurlyBytes, written)
}

// writeSeparator emits the comma between container entries and, in pretty
// mode, the newline and indentation preceding every entry.
func writeSeparator(w io.Writer, i, indent, level int, written *int64) error {
	if i > 0 {
		if err := writeSafe(w, commaBytes, written); err != nil {
			return err
		}
	}
	if indent > 0 {
		return writeIndentation(w, indent*level, written)
	}
	return nil
}

// writeClose emits the newline and indentation before a closing bracket of a
// non-empty container in pretty mode.
func writeClose(w io.Writer, n, indent, level int, written *int64) error {
	if indent > 0 && n > 0 {
		return writeIndentation(w, indent*level, written)
	}
	return nil
}

func writeIndentation(w io.Writer, spaces int, written *int64) error {
	if err := writeSafe(w, newlineBytes, written); err != nil {
		return err
	}
	for spaces > 0 {
		chunk := spaces
		if chunk > len(spaceBytes) {
			chunk = len(spaceBytes)
		}
		if err := writeSafe(w, spaceBytes[:chunk], written); err != nil {
			return err
		}
		spaces -= chunk
	}
	return nil
}

func writeSafe(w io.Writer, data []byte, written *int64) error {
	n, err := w.Write(data)
	*written += int64(n)
	return err
}

// marshalString serializes a JSON string fast when it is plain ASCII with no
// escaping, falling back to the JSON library otherwise.
func marshalString(s string) ([]byte, error) {
	l := len(s)
	buf := make([]byte, 0, l+2)
	buf = append(buf, '"')

	i := 0
	for ; i < l; i++ {
		if c := s[i]; c > 31 && c < 128 && c != '"' && c != '\\' {
			buf = append(buf, c)
		} else {
			break
		}
	}
	if i == l {
		return append(buf, '"'), nil
	}

	return j.Marshal(s)
}
