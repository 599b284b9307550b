package logsink

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeZone is the timezone parameter. It selects the zone every record
// timestamp is rendered in, independently of the host's locale.
type TimeZone int

const (
	// TimeZoneLocal renders timestamps in the host's local zone.
	TimeZoneLocal TimeZone = iota

	// TimeZoneUTC renders timestamps in UTC.
	TimeZoneUTC
)

// Location returns the time.Location timestamps are rendered in.
func (d TimeZone) Location() *time.Location {
	if d == TimeZoneUTC {
		return time.UTC
	}
	return time.Local
}

// MarshalJSON implements json.Marshaler.
func (d TimeZone) MarshalJSON() ([]byte, error) {
	var out string

	switch d {
	case TimeZoneLocal:
		out = "local"

	case TimeZoneUTC:
		out = "utc"

	default:
		return nil, fmt.Errorf("invalid timezone: %v", d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *TimeZone) UnmarshalJSON(b []byte) error {
	var in string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in {
	case "local":
		*d = TimeZoneLocal

	case "utc":
		*d = TimeZoneUTC

	default:
		return fmt.Errorf("invalid timezone: '%s'", in)
	}

	return nil
}

// UnmarshalEnv implements env.Unmarshaler.
func (d *TimeZone) UnmarshalEnv(_ string, v string) error {
	return d.UnmarshalJSON([]byte(`"` + v + `"`))
}
