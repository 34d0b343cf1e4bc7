package dirdiff

import "fmt"

// OpenError reports an input that could not be opened.
type OpenError struct {
	Path string
	err  error
}

func (e OpenError) Error() string {
	return fmt.Sprintf("can't open \"%s\": %s", e.Path, e.err)
}

func (e OpenError) Unwrap() error { return e.err }

// ReadError reports a failure while reading an input that was opened
// successfully.
type ReadError struct {
	Path string
	err  error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("error reading \"%s\": %s", e.Path, e.err)
}

func (e ReadError) Unwrap() error { return e.err }
