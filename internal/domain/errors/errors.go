package errors

import (
	"fmt"
)

// SourceError represents a source or sink that could not be opened,
// read, or written. Any SourceError aborts the whole pipeline run: all
// sources are awaited together and there is no partial-success mode.
type SourceError struct {
	URL    string // location as given by the caller
	Op     string // "open", "read" or "write"
	Reason error  // underlying I/O error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s failed for %s: %v", e.Op, e.URL, e.Reason)
}

func (e *SourceError) Unwrap() error {
	return e.Reason
}

func NewOpenError(url string, cause error) *SourceError {
	return &SourceError{
		URL:    url,
		Op:     "open",
		Reason: cause,
	}
}

func NewReadError(url string, cause error) *SourceError {
	return &SourceError{
		URL:    url,
		Op:     "read",
		Reason: cause,
	}
}
