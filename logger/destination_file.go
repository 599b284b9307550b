package logger

import (
	"fmt"
	"os"
)

// FileDestination writes log records to a file. A held handle is trusted
// only while the path still resolves to an existing entry: if the file
// is deleted or renamed away, the next write transparently recreates it
// at the same path.
type FileDestination struct {
	Path string

	file *os.File
}

// Initialize implements Destination. It opens the file immediately, so
// an unusable path is reported at setup time instead of on first write.
func (d *FileDestination) Initialize() error {
	if d.Path == "" {
		return fmt.Errorf("file path not provided")
	}
	return d.reopenIfNeeded()
}

// Clone returns a destination bound to the same path but holding no
// handle. The clone reopens the path independently on first use, so two
// instances never share descriptor state.
func (d *FileDestination) Clone() *FileDestination {
	return &FileDestination{
		Path: d.Path,
	}
}

func (d *FileDestination) reopenIfNeeded() error {
	if _, err := os.Stat(d.Path); err == nil && d.file != nil {
		return nil
	}

	// a deletion between the check and the open is not special: the open
	// either recreates the file or fails, and the failure is returned.
	f, err := os.OpenFile(d.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if d.file != nil {
		d.file.Close() //nolint:errcheck
	}
	d.file = f

	return nil
}

// Write implements Destination.
func (d *FileDestination) Write(p []byte) (int, error) {
	err := d.reopenIfNeeded()
	if err != nil {
		return 0, err
	}
	return d.file.Write(p)
}

// Flush implements Destination. Without an open handle it is a no-op.
func (d *FileDestination) Flush() error {
	if d.file == nil {
		return nil
	}
	return d.file.Sync()
}

// Close implements Destination.
func (d *FileDestination) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
