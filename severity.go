package logsink

import (
	"encoding/json"
	"fmt"

	"github.com/bluenviron/logsink/logger"
)

// Severity is the level parameter. Records below it are dropped before
// they enter the delivery queue.
type Severity logger.Level

// MarshalJSON implements json.Marshaler.
func (d Severity) MarshalJSON() ([]byte, error) {
	var out string

	switch d {
	case Severity(logger.Trace):
		out = "trace"

	case Severity(logger.Debug):
		out = "debug"

	case Severity(logger.Info):
		out = "info"

	case Severity(logger.Warn):
		out = "warn"

	case Severity(logger.Error):
		out = "error"

	case Severity(logger.Critical):
		out = "critical"

	default:
		return nil, fmt.Errorf("invalid severity: %v", d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Severity) UnmarshalJSON(b []byte) error {
	var in string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in {
	case "trace":
		*d = Severity(logger.Trace)

	case "debug":
		*d = Severity(logger.Debug)

	case "info":
		*d = Severity(logger.Info)

	case "warn", "warning":
		*d = Severity(logger.Warn)

	case "error":
		*d = Severity(logger.Error)

	case "critical":
		*d = Severity(logger.Critical)

	default:
		return fmt.Errorf("invalid severity: '%s'", in)
	}

	return nil
}

// UnmarshalEnv implements env.Unmarshaler.
func (d *Severity) UnmarshalEnv(_ string, v string) error {
	return d.UnmarshalJSON([]byte(`"` + v + `"`))
}
