package logsink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bluenviron/logsink/env"
	"github.com/bluenviron/logsink/logger"
)

// LoggerConfig is the configuration of a logger. It is a closed union:
// exactly one variant is set. The serialized form carries a "type" key
// that selects the variant, the remaining keys being the variant's
// payload:
//
//	type: file
//	path: /var/log/app.log
//	level: warn
type LoggerConfig struct {
	File     *FileLoggerConfig
	Null     *NullLoggerConfig
	Terminal *TerminalLoggerConfig
}

func (c LoggerConfig) variant() (string, interface{}, error) {
	var tag string
	var payload interface{}
	count := 0

	if c.File != nil {
		tag, payload = "file", c.File
		count++
	}
	if c.Null != nil {
		tag, payload = "null", c.Null
		count++
	}
	if c.Terminal != nil {
		tag, payload = "terminal", c.Terminal
		count++
	}

	switch count {
	case 1:
		return tag, payload, nil
	case 0:
		return "", nil, invalidf("empty logger configuration")
	}
	return "", nil, invalidf("multiple logger variants set")
}

func newFileLoggerConfig() *FileLoggerConfig {
	return &FileLoggerConfig{
		Level:       Severity(logger.Info),
		ChannelSize: logger.DefaultChannelSize,
	}
}

func newTerminalLoggerConfig() *TerminalLoggerConfig {
	return &TerminalLoggerConfig{
		Level: Severity(logger.Info),
	}
}

// unknown payload keys are rejected instead of being silently dropped.
func strictUnmarshal(buf []byte, dest interface{}) error {
	d := json.NewDecoder(bytes.NewReader(buf))
	d.DisallowUnknownFields()
	if err := d.Decode(dest); err != nil {
		return invalidf("invalid logger configuration: %s", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c LoggerConfig) MarshalJSON() ([]byte, error) {
	tag, payload, err := c.variant()
	if err != nil {
		return nil, err
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}
	err = json.Unmarshal(buf, &m)
	if err != nil {
		return nil, err
	}
	m["type"] = tag

	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *LoggerConfig) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return invalidf("invalid logger configuration: %s", err)
	}

	tagRaw, ok := raw["type"]
	if !ok {
		return invalidf("missing logger type")
	}

	var tag string
	if err := json.Unmarshal(tagRaw, &tag); err != nil {
		return invalidf("invalid logger type: %s", err)
	}
	delete(raw, "type")

	payload, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	*c = LoggerConfig{}

	switch tag {
	case "file":
		c.File = newFileLoggerConfig()
		return strictUnmarshal(payload, c.File)

	case "null":
		c.Null = &NullLoggerConfig{}
		return strictUnmarshal(payload, c.Null)

	case "terminal":
		c.Terminal = newTerminalLoggerConfig()
		return strictUnmarshal(payload, c.Terminal)
	}

	return invalidf("unsupported logger type: '%s'", tag)
}

// yaml.v2 decodes mappings as map[interface{}]interface{}, which
// encoding/json refuses to marshal.
func normalizeYAMLValue(in interface{}) interface{} {
	switch in := in.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(in))
		for k, v := range in {
			out[fmt.Sprintf("%v", k)] = normalizeYAMLValue(v)
		}
		return out

	case []interface{}:
		for i, v := range in {
			in[i] = normalizeYAMLValue(v)
		}
	}
	return in
}

// UnmarshalYAML implements yaml.Unmarshaler. The document is converted
// to JSON and decoded by UnmarshalJSON, so both formats share the same
// strictness and defaults.
func (c *LoggerConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var temp interface{}
	if err := unmarshal(&temp); err != nil {
		return err
	}

	// an unquoted "type: null" is parsed by YAML as a nil value, not as
	// the string "null"
	if m, ok := temp.(map[interface{}]interface{}); ok {
		if v, ok := m["type"]; ok && v == nil {
			m["type"] = "null"
		}
	}

	buf, err := json.Marshal(normalizeYAMLValue(temp))
	if err != nil {
		return err
	}

	return c.UnmarshalJSON(buf)
}

// MarshalYAML implements yaml.Marshaler.
func (c LoggerConfig) MarshalYAML() (interface{}, error) {
	buf, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}
	err = json.Unmarshal(buf, &m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ToBuilder converts the configuration into the builder of its variant.
func (c *LoggerConfig) ToBuilder() (Build, error) {
	_, _, err := c.variant()
	if err != nil {
		return nil, err
	}

	switch {
	case c.File != nil:
		b, err := c.File.ToBuilder()
		if err != nil {
			return nil, err
		}
		return b, nil

	case c.Terminal != nil:
		b, err := c.Terminal.ToBuilder()
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	b, err := c.Null.ToBuilder()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// LoadFromEnv loads a logger configuration from environment variables.
// <prefix>_TYPE selects the variant; the remaining variables carry the
// variant's payload, for instance <prefix>_PATH or <prefix>_LEVEL.
func LoadFromEnv(prefix string) (*LoggerConfig, error) {
	var c LoggerConfig

	switch strings.ToLower(os.Getenv(prefix + "_TYPE")) {
	case "file":
		c.File = newFileLoggerConfig()
		if err := env.Load(prefix, c.File); err != nil {
			return nil, invalidf("invalid environment configuration: %s", err)
		}
		if c.File.Path == "" {
			return nil, invalidf("file logger requires a path")
		}

	case "null":
		c.Null = &NullLoggerConfig{}

	case "terminal":
		c.Terminal = newTerminalLoggerConfig()
		if err := env.Load(prefix, c.Terminal); err != nil {
			return nil, invalidf("invalid environment configuration: %s", err)
		}

	case "":
		return nil, invalidf("%s_TYPE is not set", prefix)

	default:
		return nil, invalidf("unsupported logger type: '%s'", os.Getenv(prefix+"_TYPE"))
	}

	return &c, nil
}
