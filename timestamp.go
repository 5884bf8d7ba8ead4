package passbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeFormat is the format used to represent timestamps in the accounts
// document. It is fixed by the historical file format.
const TimeFormat = "2006-01-02 15:04:05"

// Timestamp represents an instant with second-level granularity, the
// resolution at which history entries are recorded.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a Timestamp for the given instant, truncated to the
// second in local time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Second)}
}

// Now returns the current Timestamp.
func Now() Timestamp { return NewTimestamp(time.Now()) }

// ParseTimestamp parses a string in TimeFormat.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimeFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// String formats the timestamp in TimeFormat.
func (ts Timestamp) String() string { return ts.t.Format(TimeFormat) }

// Time returns the underlying time.Time.
func (ts Timestamp) Time() time.Time { return ts.t }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Equal reports whether ts and x represent the same second.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// MarshalJSON encodes the timestamp as a TimeFormat string.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON decodes a TimeFormat string.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
