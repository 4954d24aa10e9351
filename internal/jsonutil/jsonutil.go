// Package jsonutil provides shared helpers for decoding JSON documents
// with useful error context.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UnmarshalStrict unmarshals JSON data into v and wraps any error with the
// provided context message. Fields v does not declare and trailing data
// after the first value are errors.
func UnmarshalStrict(data []byte, v interface{}, context string) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	// Only whitespace may follow; a stray closing bracket is trailing data too.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: trailing data after JSON value", context)
	}
	return nil
}
