// Package reservation models table reservations and talks to the remote
// reservation API.
package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Party size bounds offered by the form's select control.
const (
	MinPartySize = 1
	MaxPartySize = 8
)

var (
	// ErrUnknownField is returned when a field name is not part of the draft.
	ErrUnknownField = errors.New("unknown reservation field")
	// ErrInvalidValue is returned when a value has the wrong type or range for its field.
	ErrInvalidValue = errors.New("invalid reservation value")
)

// Field names one editable attribute of a Draft.
type Field string

// The draft's fixed field set. Values match the JSON names sent to the API.
const (
	FieldName            Field = "name"
	FieldPhone           Field = "phone"
	FieldNumberOfPeople  Field = "numberOfPeople"
	FieldSmoking         Field = "smoking"
	FieldDateTime        Field = "dateTime"
	FieldSpecialRequests Field = "specialRequests"
)

// Fields lists every draft field in form order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldPhone,
		FieldNumberOfPeople,
		FieldSmoking,
		FieldDateTime,
		FieldSpecialRequests,
	}
}

// ParseField maps a JSON field name to a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Draft is the in-progress reservation edited in the form.
type Draft struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	Smoking         bool   `json:"smoking"`
	DateTime        string `json:"dateTime"`
	SpecialRequests string `json:"specialRequests"`
}

// DefaultDraft returns the draft a freshly mounted form starts with.
func DefaultDraft() Draft {
	return Draft{NumberOfPeople: MinPartySize}
}

// PartySizeOptions returns the party sizes the select control offers.
func PartySizeOptions() []int {
	opts := make([]int, 0, MaxPartySize-MinPartySize+1)
	for n := MinPartySize; n <= MaxPartySize; n++ {
		opts = append(opts, n)
	}
	return opts
}

// Apply returns a copy of d with only field replaced by value.
//
// String fields take a string. NumberOfPeople takes an int or a decimal
// string (what a select control emits) in the range 1..8. Smoking takes a bool.
func (d Draft) Apply(field Field, value any) (Draft, error) {
	switch field {
	case FieldName, FieldPhone, FieldDateTime, FieldSpecialRequests:
		s, ok := value.(string)
		if !ok {
			return d, fmt.Errorf("%w: %s wants a string, got %T", ErrInvalidValue, field, value)
		}
		switch field {
		case FieldName:
			d.Name = s
		case FieldPhone:
			d.Phone = s
		case FieldDateTime:
			d.DateTime = s
		case FieldSpecialRequests:
			d.SpecialRequests = s
		}
	case FieldNumberOfPeople:
		n, err := partySize(value)
		if err != nil {
			return d, err
		}
		d.NumberOfPeople = n
	case FieldSmoking:
		b, ok := value.(bool)
		if !ok {
			return d, fmt.Errorf("%w: %s wants a bool, got %T", ErrInvalidValue, field, value)
		}
		d.Smoking = b
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return d, nil
}

func partySize(value any) (int, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: numberOfPeople %q is not a number", ErrInvalidValue, v)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: numberOfPeople wants an int, got %T", ErrInvalidValue, value)
	}
	if n < MinPartySize || n > MaxPartySize {
		return 0, fmt.Errorf("%w: numberOfPeople %d outside %d..%d", ErrInvalidValue, n, MinPartySize, MaxPartySize)
	}
	return n, nil
}

// Missing returns the required fields that are still blank, in form order.
// Only presence is checked; the phone number format is not.
func (d Draft) Missing() []Field {
	var out []Field
	if strings.TrimSpace(d.Name) == "" {
		out = append(out, FieldName)
	}
	if strings.TrimSpace(d.Phone) == "" {
		out = append(out, FieldPhone)
	}
	if strings.TrimSpace(d.DateTime) == "" {
		out = append(out, FieldDateTime)
	}
	return out
}
