package model

import (
	"encoding/json"
	"strconv"
)

// AttrKind discriminates the value variants an attribute can hold.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrBool
	AttrJSON
)

// AttrValue is one value in the open attributes bag. The bag is open in its
// keys but closed in its value shapes: strings, numbers, booleans, or an
// opaque JSON payload for anything structured.
type AttrValue struct {
	kind AttrKind
	str  string
	num  float64
	b    bool
	raw  json.RawMessage
}

// Attributes is the open string-keyed metadata map carried by every event.
type Attributes map[string]AttrValue

// StringValue wraps a string attribute.
func StringValue(s string) AttrValue { return AttrValue{kind: AttrString, str: s} }

// NumberValue wraps a numeric attribute.
func NumberValue(n float64) AttrValue { return AttrValue{kind: AttrNumber, num: n} }

// BoolValue wraps a boolean attribute.
func BoolValue(b bool) AttrValue { return AttrValue{kind: AttrBool, b: b} }

// JSONValue wraps a structured attribute kept verbatim.
func JSONValue(raw json.RawMessage) AttrValue {
	return AttrValue{kind: AttrJSON, raw: append(json.RawMessage(nil), raw...)}
}

// Kind reports which variant the value holds.
func (v AttrValue) Kind() AttrKind { return v.kind }

// Text renders the value as a plain string, whatever its variant. This is
// the form used for display and search flattening.
func (v AttrValue) Text() string {
	switch v.kind {
	case AttrString:
		return v.str
	case AttrNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case AttrBool:
		return strconv.FormatBool(v.b)
	default:
		return string(v.raw)
	}
}

// UnmarshalJSON accepts any JSON value, folding scalars into their typed
// variant and keeping everything else as raw JSON.
func (v *AttrValue) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	*v = JSONValue(raw)
	return nil
}

// MarshalJSON writes the value back in its original shape.
func (v AttrValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case AttrString:
		return json.Marshal(v.str)
	case AttrNumber:
		return json.Marshal(v.num)
	case AttrBool:
		return json.Marshal(v.b)
	default:
		if len(v.raw) == 0 {
			return []byte("null"), nil
		}
		return v.raw, nil
	}
}

// String returns the attribute under key when it holds a string variant.
func (a Attributes) String(key string) string {
	v, ok := a[key]
	if !ok || v.kind != AttrString {
		return ""
	}
	return v.str
}
