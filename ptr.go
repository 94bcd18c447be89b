package univalue

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrPathNotFound is returned by Extract when the pointer does not resolve
// to an element of the tree.
var ErrPathNotFound = fmt.Errorf("univalue: path not found")

// Extract returns the element the JSON pointer (RFC 6901) refers to. The
// empty pointer refers to the value itself.
func (v *Value) Extract(ptr string) (*Value, error) {
	segs, err := preparePointer(ptr)
	if err != nil {
		return nil, err
	}
	return v.extract(segs)
}

func (v *Value) extract(segs []string) (*Value, error) {
	if len(segs) == 0 {
		return v, nil
	}
	switch v.kind {
	case Obj:
		c, ok := v.Find(segs[0])
		if !ok {
			return nil, ErrPathNotFound
		}
		return c.extract(segs[1:])
	case Arr:
		i, ok := parseArrayIndex(segs[0])
		if !ok || i >= v.Len() {
			return nil, ErrPathNotFound
		}
		return v.values[i].extract(segs[1:])
	}
	return nil, ErrPathNotFound
}

// parseArrayIndex accepts only RFC 6901 array references: plain decimal
// digit runs, no sign, no leading zeros.
func parseArrayIndex(seg string) (int, bool) {
	if len(seg) == 0 || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if !isDigit(seg[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg)
	if err != nil { // out of int range
		return 0, false
	}
	return n, true
}

// preparePointer splits a pointer string per RFC 6901, resolving the ~1 and
// ~0 escapes.
func preparePointer(ptr string) ([]string, error) {
	if len(ptr) == 0 {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, fmt.Errorf("univalue: invalid pointer %q", ptr)
	}
	segs := strings.Split(ptr, "/")[1:]
	for i := range segs {
		segs[i] = unescapePointerSeg(segs[i])
	}
	return segs, nil
}

func unescapePointerSeg(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}
