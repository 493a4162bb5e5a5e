package reservation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"pastamakers/internal/jsonutil"
)

// PartySize is a party size decoded from either a JSON number or a numeric
// string; the upstream API has stored both.
type PartySize int

// UnmarshalJSON implements json.Unmarshaler.
func (p *PartySize) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n, err := jsonutil.ToInt(raw)
	if err != nil {
		return fmt.Errorf("numberOfPeople: %w", err)
	}
	*p = PartySize(n)
	return nil
}

// StoredReservation is a reservation as returned by the list endpoint.
type StoredReservation struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	NumberOfPeople  PartySize `json:"numberOfPeople"`
	Smoking         bool      `json:"smoking"`
	DateTime        string    `json:"dateTime"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedAt       string    `json:"createdAt,omitempty"`
	UpdatedAt       string    `json:"updatedAt,omitempty"`
}

// Line renders the reservation as one list row, e.g.
// "Ana for 2 at May 1st 2023 | 19:00".
func (r StoredReservation) Line() string {
	return fmt.Sprintf("%s for %d at %s", r.Name, int(r.NumberOfPeople), FormatDateTime(r.DateTime))
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO 8601 timestamp. Timestamps without a zone are
// read as local wall-clock time.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatDateTime reformats an ISO timestamp as "<Month> <day-ordinal> <year> | HH:mm",
// keeping the zone the timestamp carries. Input that does not parse is
// returned unchanged.
func FormatDateTime(s string) string {
	t, err := ParseDateTime(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%s %s %d | %s", t.Month(), humanize.Ordinal(t.Day()), t.Year(), t.Format("15:04"))
}
