package logsink

import (
	"encoding/json"
	"fmt"

	"github.com/bluenviron/logsink/logger"
)

// Format is the format parameter, selecting the verbosity of rendered
// log lines.
type Format logger.Format

// MarshalJSON implements json.Marshaler.
func (d Format) MarshalJSON() ([]byte, error) {
	var out string

	switch d {
	case Format(logger.FormatFull):
		out = "full"

	case Format(logger.FormatCompact):
		out = "compact"

	default:
		return nil, fmt.Errorf("invalid format: %v", d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Format) UnmarshalJSON(b []byte) error {
	var in string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in {
	case "full":
		*d = Format(logger.FormatFull)

	case "compact":
		*d = Format(logger.FormatCompact)

	default:
		return fmt.Errorf("invalid format: '%s'", in)
	}

	return nil
}

// UnmarshalEnv implements env.Unmarshaler.
func (d *Format) UnmarshalEnv(_ string, v string) error {
	return d.UnmarshalJSON([]byte(`"` + v + `"`))
}
