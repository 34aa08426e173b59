// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToJSONBinary encodes [v] as a contract message. HTML characters are left
// unescaped so URIs round-trip byte for byte.
func ToJSONBinary(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// FromJSON decodes a contract message into [v].
func FromJSON(b []byte, v any) error {
	if len(b) == 0 {
		return ErrEmptyPayload
	}
	return json.Unmarshal(b, v)
}

// Fields lists the keys a strict JSON object may carry. Required keys must be
// present and not null.
type Fields struct {
	Required []string
	Optional []string
}

// FromJSONStrict decodes the object in [b] into [v], matching keys exactly.
// Keys outside [fields] are rejected. The returned map holds the raw value of
// every key, for checking nested objects.
func FromJSONStrict(b []byte, fields Fields, v any) (map[string]json.RawMessage, error) {
	if len(b) == 0 {
		return nil, ErrEmptyPayload
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an object, found null", ErrMissingField)
	}
	if err := fields.check(raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, err
	}
	return raw, nil
}

func (f Fields) check(raw map[string]json.RawMessage) error {
	allowed := make(map[string]struct{}, len(f.Required)+len(f.Optional))
	for _, k := range f.Required {
		allowed[k] = struct{}{}
		v, ok := raw[k]
		if !ok || isNull(v) {
			return fmt.Errorf("%w: %s", ErrMissingField, k)
		}
	}
	for _, k := range f.Optional {
		allowed[k] = struct{}{}
	}
	for k := range raw {
		if _, ok := allowed[k]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, k)
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
