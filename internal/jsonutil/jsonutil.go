// Package jsonutil provides shared helpers for decoding JSON payloads:
// context-wrapped errors, array decoding and loose scalar conversion.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmpty is returned by UnmarshalArray when the decoded array has no entries.
var ErrEmpty = errors.New("empty result")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a single JSON value from r into v and wraps any
// error with the provided context message.
func DecodeWithContext(r io.Reader, v any, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArray unmarshals JSON data into a slice and validates that
// the result is non-empty.
func UnmarshalArray[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", context, ErrEmpty)
	}
	return entries, nil
}

// DecodeArrayAllowEmpty decodes a JSON array from r. A JSON null or an empty
// array both yield a non-nil empty slice.
func DecodeArrayAllowEmpty[T any](r io.Reader, context string) ([]T, error) {
	var entries []T
	if err := DecodeWithContext(r, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// ToInt converts a decoded JSON scalar (number or numeric string) to an int.
func ToInt(v any) (int, error) {
	switch val := v.(type) {
	case float64:
		if val != float64(int64(val)) {
			return 0, fmt.Errorf("not an integer: %g", val)
		}
		return int(val), nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", val)
		}
		return n, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
