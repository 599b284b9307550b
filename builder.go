package logsink

import (
	"github.com/bluenviron/logsink/logger"
)

// Build is implemented by every logger builder. The builders hold all
// tunables of a destination kind and perform no I/O until Build is
// called.
type Build interface {
	// Build assembles the configured pipeline and returns a running
	// logger: severity filter, record renderer, delivery queue and
	// destination writer.
	Build() (*logger.Logger, error)
}
