// Package logsink builds ready-to-use loggers from declarative,
// serializable configuration values.
//
// A LoggerConfig selects one of the supported destination kinds (file,
// terminal, null) together with its severity threshold, record format
// and time zone. BuildLogger turns it into a running logger in one
// call:
//
//	config, err := logsink.LoadFromFile("logging.yml")
//	if err != nil {
//		panic(err)
//	}
//
//	l, err := logsink.BuildLogger(config)
//	if err != nil {
//		panic(err)
//	}
//	defer l.Close()
//
//	l.Log(logger.Info, "server started on %v", addr)
//
// Records are filtered by severity, rendered with the configured format
// and time zone, and delivered to the destination by a dedicated
// goroutine in enqueue order. The file destination recreates its file
// transparently if it is deleted or rotated away.
package logsink

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bluenviron/logsink/logger"
)

// BuildLogger builds a logger with the given configuration.
func BuildLogger(c *LoggerConfig) (*logger.Logger, error) {
	b, err := c.ToBuilder()
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// LoadFromFile reads a logger configuration from a YAML file.
func LoadFromFile(path string) (*LoggerConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapOther("cannot read configuration", err)
	}

	var c LoggerConfig
	err = yaml.Unmarshal(buf, &c)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, invalidf("cannot parse configuration: %s", err)
	}

	return &c, nil
}
