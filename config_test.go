package logsink

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/bluenviron/logsink/logger"
)

func TestConfigRoundTrip(t *testing.T) {
	for _, ca := range []struct {
		name string
		doc  string
		conf LoggerConfig
	}{
		{
			"file minimal",
			`{"type": "file", "path": "/tmp/x.log"}`,
			LoggerConfig{
				File: &FileLoggerConfig{
					Level:       Severity(logger.Info),
					Format:      Format(logger.FormatFull),
					TimeZone:    TimeZoneLocal,
					Path:        "/tmp/x.log",
					ChannelSize: 1024,
				},
			},
		},
		{
			"file complete",
			`{"type": "file", "path": "/tmp/x.log", "level": "error",` +
				`"format": "compact", "timezone": "utc", "channel_size": 64}`,
			LoggerConfig{
				File: &FileLoggerConfig{
					Level:       Severity(logger.Error),
					Format:      Format(logger.FormatCompact),
					TimeZone:    TimeZoneUTC,
					Path:        "/tmp/x.log",
					ChannelSize: 64,
				},
			},
		},
		{
			"null",
			`{"type": "null"}`,
			LoggerConfig{
				Null: &NullLoggerConfig{},
			},
		},
		{
			"terminal minimal",
			`{"type": "terminal"}`,
			LoggerConfig{
				Terminal: &TerminalLoggerConfig{
					Level:       Severity(logger.Info),
					Format:      Format(logger.FormatFull),
					TimeZone:    TimeZoneLocal,
					Destination: StreamStderr,
				},
			},
		},
		{
			"terminal complete",
			`{"type": "terminal", "level": "warn", "format": "compact",` +
				`"timezone": "utc", "destination": "stdout"}`,
			LoggerConfig{
				Terminal: &TerminalLoggerConfig{
					Level:       Severity(logger.Warn),
					Format:      Format(logger.FormatCompact),
					TimeZone:    TimeZoneUTC,
					Destination: StreamStdout,
				},
			},
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			var c LoggerConfig
			err := json.Unmarshal([]byte(ca.doc), &c)
			require.NoError(t, err)
			require.Equal(t, ca.conf, c)

			// JSON round trip
			buf, err := json.Marshal(c)
			require.NoError(t, err)

			var c2 LoggerConfig
			err = json.Unmarshal(buf, &c2)
			require.NoError(t, err)
			require.Equal(t, c, c2)

			// YAML round trip
			buf, err = yaml.Marshal(c)
			require.NoError(t, err)

			var c3 LoggerConfig
			err = yaml.Unmarshal(buf, &c3)
			require.NoError(t, err)
			require.Equal(t, c, c3)
		})
	}
}

func TestConfigFromYAML(t *testing.T) {
	var c LoggerConfig
	err := yaml.Unmarshal([]byte("type: file\n"+
		"path: /tmp/x.log\n"+
		"level: warning\n"), &c)
	require.NoError(t, err)

	require.NotNil(t, c.File)
	require.Equal(t, "/tmp/x.log", c.File.Path)
	require.Equal(t, Severity(logger.Warn), c.File.Level)
	require.Equal(t, 1024, c.File.ChannelSize)
}

func TestConfigInvalid(t *testing.T) {
	for _, ca := range []struct {
		name string
		doc  string
	}{
		{"missing type", `{"path": "/tmp/x.log"}`},
		{"unsupported type", `{"type": "syslog"}`},
		{"unknown field", `{"type": "file", "path": "/tmp/x.log", "rotate": true}`},
		{"null with payload", `{"type": "null", "path": "/tmp/x.log"}`},
		{"invalid level", `{"type": "file", "path": "/tmp/x.log", "level": "verbose"}`},
		{"invalid timezone", `{"type": "terminal", "timezone": "mars"}`},
	} {
		t.Run(ca.name, func(t *testing.T) {
			var c LoggerConfig
			err := json.Unmarshal([]byte(ca.doc), &c)
			require.Error(t, err)
			require.True(t, IsInvalid(err), "expected an invalid-configuration error, got: %v", err)
		})
	}
}

func TestConfigDispatch(t *testing.T) {
	var c LoggerConfig
	err := json.Unmarshal([]byte(`{"type": "file", "path": "/tmp/x.log"}`), &c)
	require.NoError(t, err)

	b, err := c.ToBuilder()
	require.NoError(t, err)
	require.IsType(t, &FileLoggerBuilder{}, b)

	err = json.Unmarshal([]byte(`{"type": "terminal"}`), &c)
	require.NoError(t, err)

	b, err = c.ToBuilder()
	require.NoError(t, err)
	require.IsType(t, &TerminalLoggerBuilder{}, b)

	err = json.Unmarshal([]byte(`{"type": "null"}`), &c)
	require.NoError(t, err)

	b, err = c.ToBuilder()
	require.NoError(t, err)
	require.IsType(t, &NullLoggerBuilder{}, b)
}

func TestConfigDispatchMissingPath(t *testing.T) {
	var c LoggerConfig
	err := json.Unmarshal([]byte(`{"type": "file"}`), &c)
	require.NoError(t, err)

	_, err = c.ToBuilder()
	require.Error(t, err)
	require.True(t, IsInvalid(err))
}

func TestConfigDispatchEmpty(t *testing.T) {
	var c LoggerConfig
	_, err := c.ToBuilder()
	require.Error(t, err)
	require.True(t, IsInvalid(err))
}

func TestConfigNegativeChannelSize(t *testing.T) {
	c := LoggerConfig{
		File: &FileLoggerConfig{
			Path:        "/tmp/x.log",
			ChannelSize: -5,
		},
	}
	_, err := c.ToBuilder()
	require.Error(t, err)
	require.True(t, IsInvalid(err))
}

func TestBuilderChaining(t *testing.T) {
	b := NewFileLoggerBuilder("/tmp/x.log")
	b2 := b.Level(Severity(logger.Debug)).
		Format(Format(logger.FormatCompact)).
		TimeZone(TimeZoneUTC).
		ChannelSize(16)
	require.Same(t, b, b2)

	tb := NewTerminalLoggerBuilder()
	tb2 := tb.Level(Severity(logger.Error)).Destination(StreamStdout)
	require.Same(t, tb, tb2)
}
