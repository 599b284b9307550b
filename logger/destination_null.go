package logger

// NullDestination discards every record.
type NullDestination struct{}

// Initialize implements Destination.
func (*NullDestination) Initialize() error {
	return nil
}

// Write implements Destination.
func (*NullDestination) Write(p []byte) (int, error) {
	return len(p), nil
}

// Flush implements Destination.
func (*NullDestination) Flush() error {
	return nil
}

// Close implements Destination.
func (*NullDestination) Close() error {
	return nil
}
