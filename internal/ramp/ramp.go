// Package ramp models the host's ramp-parameter value as an opaque JSON blob.
//
// The preset store never interprets a Ramp: it copies the host-native
// serialization verbatim into and out of the preset files. Decode offers a
// read-only view of the common {basis, keys, values} shape for display and
// kind detection.
package ramp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Kind is the ramp category. Each kind is persisted to its own file.
type Kind string

const (
	Color Kind = "color"
	Float Kind = "float"
)

// Kinds lists every valid Kind in menu order.
var Kinds = []Kind{Color, Float}

// ErrInvalidKind is returned by ParseKind for anything other than color or float.
var ErrInvalidKind = errors.New("invalid ramp kind")

// ParseKind converts s to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Color, Float:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (want color or float)", ErrInvalidKind, s)
}

// Valid reports whether k is color or float.
func (k Kind) Valid() bool { return k == Color || k == Float }

func (k Kind) String() string { return string(k) }

// Ramp is a host-native ramp serialization. The zero value is an empty ramp
// and marshals as JSON null.
type Ramp struct {
	raw json.RawMessage
}

// FromJSON validates data as a single JSON value and returns it as a Ramp in
// compact form.
func FromJSON(data []byte) (Ramp, error) {
	var r Ramp
	if err := r.UnmarshalJSON(data); err != nil {
		return Ramp{}, err
	}
	return r, nil
}

// MustFromJSON is FromJSON for literals; it panics on invalid input.
func MustFromJSON(s string) Ramp {
	r, err := FromJSON([]byte(s))
	if err != nil {
		panic("ramp.MustFromJSON: " + err.Error())
	}
	return r
}

// IsZero reports whether r holds no value.
func (r Ramp) IsZero() bool { return len(r.raw) == 0 }

// Bytes returns a copy of the compact JSON encoding of r.
func (r Ramp) Bytes() []byte {
	if r.IsZero() {
		return []byte("null")
	}
	return bytes.Clone(r.raw)
}

func (r Ramp) String() string { return string(r.Bytes()) }

// MarshalJSON implements json.Marshaler.
func (r Ramp) MarshalJSON() ([]byte, error) {
	return r.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The value is stored compacted so
// that the same ramp always serializes to the same bytes.
func (r *Ramp) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return errors.New("ramp: invalid JSON")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return fmt.Errorf("ramp: %w", err)
	}
	if buf.String() == "null" {
		r.raw = nil
		return nil
	}
	r.raw = buf.Bytes()
	return nil
}

// Equal reports whether r and other hold structurally equal JSON values.
// Object key order and insignificant whitespace are ignored.
func (r Ramp) Equal(other Ramp) bool {
	if r.IsZero() || other.IsZero() {
		return r.IsZero() == other.IsZero()
	}
	var a, b any
	if err := json.Unmarshal(r.raw, &a); err != nil {
		return false
	}
	if err := json.Unmarshal(other.raw, &b); err != nil {
		return false
	}
	return cmp.Equal(a, b)
}
