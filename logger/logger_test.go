package logger

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var _ Writer = (*Logger)(nil)

type captureDestination struct {
	records []string
}

func (*captureDestination) Initialize() error {
	return nil
}

func (d *captureDestination) Write(p []byte) (int, error) {
	d.records = append(d.records, string(p))
	return len(p), nil
}

func (*captureDestination) Flush() error {
	return nil
}

func (*captureDestination) Close() error {
	return nil
}

func TestLoggerToFile(t *testing.T) {
	for _, ca := range []string{
		"full",
		"compact",
	} {
		t.Run(ca, func(t *testing.T) {
			tempFile, err := os.CreateTemp(os.TempDir(), "logsink-logger-")
			require.NoError(t, err)
			defer os.Remove(tempFile.Name())
			defer tempFile.Close()

			format := FormatFull
			if ca == "compact" {
				format = FormatCompact
			}

			l := &Logger{
				Level:  Debug,
				Format: format,
				Destination: &FileDestination{
					Path: tempFile.Name(),
				},
				Location: time.UTC,
				timeNow:  func() time.Time { return time.Date(2003, 11, 4, 23, 15, 8, 431232, time.UTC) },
			}
			err = l.Initialize()
			require.NoError(t, err)

			l.Log(Info, "test format %d", 123)
			l.Close()

			buf, err := os.ReadFile(tempFile.Name())
			require.NoError(t, err)

			if ca == "full" {
				require.Equal(t, "2003/11/04 23:15:08 INF test format 123\n", string(buf))
			} else {
				require.Equal(t, "23:15:08 I test format 123\n", string(buf))
			}
		})
	}
}

func TestLoggerTimeZone(t *testing.T) {
	dest := &captureDestination{}

	l := &Logger{
		Level:       Debug,
		Destination: dest,
		Location:    time.FixedZone("CET", 60*60),
		timeNow:     func() time.Time { return time.Date(2003, 11, 4, 23, 15, 8, 0, time.UTC) },
	}
	err := l.Initialize()
	require.NoError(t, err)

	l.Log(Info, "zoned")
	l.Close()

	require.Equal(t, []string{"2003/11/05 00:15:08 INF zoned\n"}, dest.records)
}

func TestLoggerLevelFiltering(t *testing.T) {
	levels := []Level{Trace, Debug, Info, Warn, Error, Critical}

	for i, lower := range levels {
		for _, higher := range levels[i+1:] {
			dest := &captureDestination{}

			l := &Logger{
				Level:       higher,
				Destination: dest,
			}
			err := l.Initialize()
			require.NoError(t, err)

			l.Log(lower, "dropped")
			l.Log(higher, "kept")
			l.Close()

			require.Len(t, dest.records, 1)
			require.Contains(t, dest.records[0], "kept")
		}
	}
}

func TestLoggerOrdering(t *testing.T) {
	dest := &captureDestination{}

	l := &Logger{
		Level:       Debug,
		Destination: dest,
		ChannelSize: 4,
	}
	err := l.Initialize()
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		l.Log(Info, "record %d", i)
	}
	l.Close()

	require.Len(t, dest.records, 200)
	for i, rec := range dest.records {
		require.True(t, strings.HasSuffix(rec, "record "+itoaString(i)+"\n"), "record %d out of order: %q", i, rec)
	}
}

func itoaString(i int) string {
	return string(itoa(i, 1))
}

func TestLoggerCloseIdempotent(t *testing.T) {
	l := &Logger{
		Destination: &NullDestination{},
	}
	err := l.Initialize()
	require.NoError(t, err)

	l.Close()
	l.Close()

	// records after Close are dropped, not delivered to a closed queue
	l.Log(Info, "late")
}

func TestLoggerLeveledMethods(t *testing.T) {
	dest := &captureDestination{}

	l := &Logger{
		Level:       Trace,
		Destination: dest,
	}
	err := l.Initialize()
	require.NoError(t, err)

	l.Tracef("a")
	l.Debugf("b")
	l.Infof("c")
	l.Warnf("d")
	l.Errorf("e")
	l.Criticalf("f")
	l.Close()

	require.Len(t, dest.records, 6)
	require.Contains(t, dest.records[0], "TRA a")
	require.Contains(t, dest.records[1], "DEB b")
	require.Contains(t, dest.records[2], "INF c")
	require.Contains(t, dest.records[3], "WAR d")
	require.Contains(t, dest.records[4], "ERR e")
	require.Contains(t, dest.records[5], "CRI f")
}

func TestLoggerInvalidChannelSize(t *testing.T) {
	l := &Logger{
		Destination: &NullDestination{},
		ChannelSize: -1,
	}
	err := l.Initialize()
	require.Error(t, err)
}
