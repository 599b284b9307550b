// Package logger contains the runtime part of the log pipeline: severity
// levels, record rendering and the asynchronous destination writer.
package logger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gookit/color"
)

// Level is a log level.
type Level int

// Log levels, ordered from least to most severe.
const (
	Trace Level = iota + 1
	Debug
	Info
	Warn
	Error
	Critical
)

// Format selects the verbosity of rendered log lines.
type Format int

const (
	// FormatFull renders date, time, level and message.
	FormatFull Format = iota

	// FormatCompact renders time, a single-letter level and the message.
	FormatCompact
)

// DefaultChannelSize is the default capacity of the delivery queue.
const DefaultChannelSize = 1024

// Destination is a log destination.
type Destination interface {
	Initialize() error
	Write(p []byte) (int, error)
	Flush() error
	Close() error
}

// Logger is a log handler. Records at or above Level are rendered on the
// caller and delivered to Destination by a dedicated goroutine, in
// enqueue order.
type Logger struct {
	Level       Level
	Format      Format
	Location    *time.Location
	UseColor    bool
	Destination Destination
	ChannelSize int

	timeNow func() time.Time

	mutex  sync.RWMutex
	closed bool
	queue  chan []byte
	done   chan struct{}
}

// Initialize prepares the destination and starts the delivery goroutine.
// Destination preparation failures are returned here, not on first write.
func (lh *Logger) Initialize() error {
	if lh.Level == 0 {
		lh.Level = Info
	}
	if lh.Format != FormatFull && lh.Format != FormatCompact {
		return fmt.Errorf("invalid format: %v", lh.Format)
	}
	if lh.Location == nil {
		lh.Location = time.Local
	}
	if lh.Destination == nil {
		lh.Destination = &NullDestination{}
	}
	if lh.ChannelSize == 0 {
		lh.ChannelSize = DefaultChannelSize
	}
	if lh.ChannelSize < 0 {
		return fmt.Errorf("invalid channel size: %d", lh.ChannelSize)
	}
	if lh.timeNow == nil {
		lh.timeNow = time.Now
	}

	err := lh.Destination.Initialize()
	if err != nil {
		return err
	}

	lh.queue = make(chan []byte, lh.ChannelSize)
	lh.done = make(chan struct{})
	go lh.run()

	return nil
}

// Close drains already-queued records, then flushes and releases the
// destination. It is idempotent. Records logged concurrently with Close
// may or may not be delivered.
func (lh *Logger) Close() {
	lh.mutex.Lock()
	if lh.closed {
		lh.mutex.Unlock()
		return
	}
	lh.closed = true
	lh.mutex.Unlock()

	close(lh.queue)
	<-lh.done

	lh.Destination.Flush() //nolint:errcheck
	lh.Destination.Close() //nolint:errcheck
}

func (lh *Logger) run() {
	defer close(lh.done)

	// a write failure cannot be reported to the producer; it is printed
	// once to stderr and further failures are suppressed until a write
	// succeeds again.
	failed := false

	for buf := range lh.queue {
		_, err := lh.Destination.Write(buf)
		if err != nil {
			if !failed {
				fmt.Fprintf(os.Stderr, "cannot write log record: %v\n", err)
				failed = true
			}
			continue
		}
		failed = false
	}
}

// https://golang.org/src/log/log.go#L78
func itoa(i int, wid int) []byte {
	// Assemble decimal in reverse order.
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	b[bp] = byte('0' + i)
	return b[bp:]
}

func writeTime(buf *bytes.Buffer, t time.Time, format Format, doColor bool) {
	var intbuf bytes.Buffer

	if format == FormatFull {
		year, month, day := t.Date()
		intbuf.Write(itoa(year, 4))
		intbuf.WriteByte('/')
		intbuf.Write(itoa(int(month), 2))
		intbuf.WriteByte('/')
		intbuf.Write(itoa(day, 2))
		intbuf.WriteByte(' ')
	}

	hour, mins, sec := t.Clock()
	intbuf.Write(itoa(hour, 2))
	intbuf.WriteByte(':')
	intbuf.Write(itoa(mins, 2))
	intbuf.WriteByte(':')
	intbuf.Write(itoa(sec, 2))
	intbuf.WriteByte(' ')

	if doColor {
		buf.WriteString(color.RenderString(color.Gray.Code(), intbuf.String()))
	} else {
		buf.WriteString(intbuf.String())
	}
}

func levelLabel(level Level, format Format) string {
	var label string

	switch level {
	case Trace:
		label = "TRA"

	case Debug:
		label = "DEB"

	case Info:
		label = "INF"

	case Warn:
		label = "WAR"

	case Error:
		label = "ERR"

	case Critical:
		label = "CRI"

	default:
		label = "???"
	}

	if format == FormatCompact {
		return label[:1]
	}
	return label
}

func levelColor(level Level) string {
	switch level {
	case Trace:
		return color.Gray.Code()

	case Debug:
		return color.Debug.Code()

	case Info:
		return color.Green.Code()

	case Warn:
		return color.Warn.Code()

	case Error:
		return color.Error.Code()

	default:
		return color.Magenta.Code()
	}
}

func writeLevel(buf *bytes.Buffer, level Level, format Format, doColor bool) {
	label := levelLabel(level, format)

	if doColor {
		buf.WriteString(color.RenderString(levelColor(level), label))
	} else {
		buf.WriteString(label)
	}
	buf.WriteByte(' ')
}

func writeContent(buf *bytes.Buffer, format string, args []interface{}) {
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
}

func (lh *Logger) render(t time.Time, level Level, format string, args []interface{}) []byte {
	var buf bytes.Buffer
	writeTime(&buf, t.In(lh.Location), lh.Format, lh.UseColor)
	writeLevel(&buf, level, lh.Format, lh.UseColor)
	writeContent(&buf, format, args)
	return buf.Bytes()
}

// Log writes a log record. Records below the configured level are
// dropped before they are queued. When the queue is full, Log blocks
// until the delivery goroutine catches up.
func (lh *Logger) Log(level Level, format string, args ...interface{}) {
	if level < lh.Level {
		return
	}

	buf := lh.render(lh.timeNow(), level, format, args)

	lh.mutex.RLock()
	defer lh.mutex.RUnlock()

	if lh.closed {
		return
	}
	lh.queue <- buf
}

// Tracef writes a record at the Trace level.
func (lh *Logger) Tracef(format string, args ...interface{}) {
	lh.Log(Trace, format, args...)
}

// Debugf writes a record at the Debug level.
func (lh *Logger) Debugf(format string, args ...interface{}) {
	lh.Log(Debug, format, args...)
}

// Infof writes a record at the Info level.
func (lh *Logger) Infof(format string, args ...interface{}) {
	lh.Log(Info, format, args...)
}

// Warnf writes a record at the Warn level.
func (lh *Logger) Warnf(format string, args ...interface{}) {
	lh.Log(Warn, format, args...)
}

// Errorf writes a record at the Error level.
func (lh *Logger) Errorf(format string, args ...interface{}) {
	lh.Log(Error, format, args...)
}

// Criticalf writes a record at the Critical level.
func (lh *Logger) Criticalf(format string, args ...interface{}) {
	lh.Log(Critical, format, args...)
}
