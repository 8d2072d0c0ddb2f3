package entities

import (
	"strconv"
	"time"
)

// TimestampLayout is the canonical wire format for all timestamps:
// ISO-8601 with millisecond precision, always UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a time.Time that marshals in the canonical wire format.
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

// NewTimestampPtr creates an optional Timestamp from a nullable time.
func NewTimestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(TimestampLayout))), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts the canonical layout and
// falls back to RFC3339 for inputs produced by other clients.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed.UTC()
	return nil
}
