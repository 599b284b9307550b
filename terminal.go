package logsink

import (
	"github.com/bluenviron/logsink/logger"
)

// TerminalLoggerConfig is the configuration of a TerminalLoggerBuilder.
type TerminalLoggerConfig struct {
	Level       Severity       `json:"level"`
	Format      Format         `json:"format"`
	TimeZone    TimeZone       `json:"timezone"`
	Destination TerminalStream `json:"destination"`
}

// ToBuilder converts the configuration into a builder.
func (c *TerminalLoggerConfig) ToBuilder() (*TerminalLoggerBuilder, error) {
	b := NewTerminalLoggerBuilder()
	if c.Level != 0 {
		b.Level(c.Level)
	}
	b.Format(c.Format)
	b.TimeZone(c.TimeZone)
	b.Destination(c.Destination)
	return b, nil
}

// TerminalLoggerBuilder builds loggers that write log records to the
// standard error or the standard output. Records carry colors when the
// chosen stream is an interactive terminal.
type TerminalLoggerBuilder struct {
	format      Format
	timezone    TimeZone
	level       Severity
	stream      TerminalStream
	channelSize int
}

// NewTerminalLoggerBuilder allocates a TerminalLoggerBuilder. The
// default stream is the standard error.
func NewTerminalLoggerBuilder() *TerminalLoggerBuilder {
	return &TerminalLoggerBuilder{
		level:       Severity(logger.Info),
		channelSize: logger.DefaultChannelSize,
	}
}

// Level sets the minimum severity of the resulting logger.
func (b *TerminalLoggerBuilder) Level(level Severity) *TerminalLoggerBuilder {
	b.level = level
	return b
}

// Format sets the format of log records.
func (b *TerminalLoggerBuilder) Format(format Format) *TerminalLoggerBuilder {
	b.format = format
	return b
}

// TimeZone sets the zone record timestamps are rendered in.
func (b *TerminalLoggerBuilder) TimeZone(timezone TimeZone) *TerminalLoggerBuilder {
	b.timezone = timezone
	return b
}

// Destination sets the stream records are written to.
func (b *TerminalLoggerBuilder) Destination(stream TerminalStream) *TerminalLoggerBuilder {
	b.stream = stream
	return b
}

// ChannelSize sets the capacity of the delivery queue.
func (b *TerminalLoggerBuilder) ChannelSize(channelSize int) *TerminalLoggerBuilder {
	b.channelSize = channelSize
	return b
}

// Build implements Build.
func (b *TerminalLoggerBuilder) Build() (*logger.Logger, error) {
	dest := &logger.TerminalDestination{
		Stream: b.stream.file(),
	}

	l := &logger.Logger{
		Level:       logger.Level(b.level),
		Format:      logger.Format(b.format),
		Location:    b.timezone.Location(),
		UseColor:    dest.IsTerminal(),
		Destination: dest,
		ChannelSize: b.channelSize,
	}

	err := l.Initialize()
	if err != nil {
		return nil, wrapOther("cannot initialize terminal logger", err)
	}
	return l, nil
}
