package logsink

import (
	"encoding/json"
	"fmt"
	"os"
)

// TerminalStream is the destination parameter of the terminal variant.
type TerminalStream int

const (
	// StreamStderr writes to the standard error.
	StreamStderr TerminalStream = iota

	// StreamStdout writes to the standard output.
	StreamStdout
)

func (d TerminalStream) file() *os.File {
	if d == StreamStdout {
		return os.Stdout
	}
	return os.Stderr
}

// MarshalJSON implements json.Marshaler.
func (d TerminalStream) MarshalJSON() ([]byte, error) {
	var out string

	switch d {
	case StreamStderr:
		out = "stderr"

	case StreamStdout:
		out = "stdout"

	default:
		return nil, fmt.Errorf("invalid destination: %v", d)
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *TerminalStream) UnmarshalJSON(b []byte) error {
	var in string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	switch in {
	case "stderr":
		*d = StreamStderr

	case "stdout":
		*d = StreamStdout

	default:
		return fmt.Errorf("invalid destination: '%s'", in)
	}

	return nil
}

// UnmarshalEnv implements env.Unmarshaler.
func (d *TerminalStream) UnmarshalEnv(_ string, v string) error {
	return d.UnmarshalJSON([]byte(`"` + v + `"`))
}
