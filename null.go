package logsink

import (
	"github.com/bluenviron/logsink/logger"
)

// NullLoggerConfig is the configuration of a NullLoggerBuilder. It
// carries no payload.
type NullLoggerConfig struct{}

// ToBuilder converts the configuration into a builder.
func (c *NullLoggerConfig) ToBuilder() (*NullLoggerBuilder, error) {
	return NewNullLoggerBuilder(), nil
}

// NullLoggerBuilder builds loggers that discard every record. The full
// pipeline is still assembled, so filtering and ordering behave exactly
// as with the other variants.
type NullLoggerBuilder struct{}

// NewNullLoggerBuilder allocates a NullLoggerBuilder.
func NewNullLoggerBuilder() *NullLoggerBuilder {
	return &NullLoggerBuilder{}
}

// Build implements Build.
func (b *NullLoggerBuilder) Build() (*logger.Logger, error) {
	l := &logger.Logger{
		Destination: &logger.NullDestination{},
	}

	err := l.Initialize()
	if err != nil {
		return nil, wrapOther("cannot initialize null logger", err)
	}
	return l, nil
}
