package logsink

import (
	"github.com/bluenviron/logsink/logger"
)

// FileLoggerConfig is the configuration of a FileLoggerBuilder.
type FileLoggerConfig struct {
	Level       Severity `json:"level"`
	Format      Format   `json:"format"`
	TimeZone    TimeZone `json:"timezone"`
	Path        string   `json:"path"`
	ChannelSize int      `json:"channel_size"`
}

// ToBuilder converts the configuration into a builder.
func (c *FileLoggerConfig) ToBuilder() (*FileLoggerBuilder, error) {
	if c.Path == "" {
		return nil, invalidf("file logger requires a path")
	}
	if c.ChannelSize < 0 {
		return nil, invalidf("invalid channel size: %d", c.ChannelSize)
	}

	b := NewFileLoggerBuilder(c.Path)
	if c.Level != 0 {
		b.Level(c.Level)
	}
	b.Format(c.Format)
	b.TimeZone(c.TimeZone)
	if c.ChannelSize != 0 {
		b.ChannelSize(c.ChannelSize)
	}
	return b, nil
}

// FileLoggerBuilder builds loggers that write log records to the given
// file. The resulting logger works asynchronously; the default delivery
// queue capacity is 1024 records.
type FileLoggerBuilder struct {
	format      Format
	timezone    TimeZone
	level       Severity
	path        string
	channelSize int
}

// NewFileLoggerBuilder allocates a FileLoggerBuilder that uses path as
// the output destination of log records.
func NewFileLoggerBuilder(path string) *FileLoggerBuilder {
	return &FileLoggerBuilder{
		level:       Severity(logger.Info),
		path:        path,
		channelSize: logger.DefaultChannelSize,
	}
}

// Level sets the minimum severity of the resulting logger.
func (b *FileLoggerBuilder) Level(level Severity) *FileLoggerBuilder {
	b.level = level
	return b
}

// Format sets the format of log records.
func (b *FileLoggerBuilder) Format(format Format) *FileLoggerBuilder {
	b.format = format
	return b
}

// TimeZone sets the zone record timestamps are rendered in.
func (b *FileLoggerBuilder) TimeZone(timezone TimeZone) *FileLoggerBuilder {
	b.timezone = timezone
	return b
}

// ChannelSize sets the capacity of the delivery queue.
func (b *FileLoggerBuilder) ChannelSize(channelSize int) *FileLoggerBuilder {
	b.channelSize = channelSize
	return b
}

// Build implements Build.
func (b *FileLoggerBuilder) Build() (*logger.Logger, error) {
	l := &logger.Logger{
		Level:    logger.Level(b.level),
		Format:   logger.Format(b.format),
		Location: b.timezone.Location(),
		Destination: &logger.FileDestination{
			Path: b.path,
		},
		ChannelSize: b.channelSize,
	}

	err := l.Initialize()
	if err != nil {
		return nil, wrapOther("cannot initialize file logger", err)
	}
	return l, nil
}
