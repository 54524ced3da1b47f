package domain

import "fmt"

// ArgumentError reports a request precondition violation detected
// before any extraction work starts: a missing source file, an
// unsupported format, or a missing output/scratch directory.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Reason)
}

// ParseError reports a failure while reading the package itself:
// archive corruption, a missing bundle or manifest, malformed records,
// or an icon that would not convert. It always carries the original
// cause.
type ParseError struct {
	// Path is the source package file.
	Path string

	// Stage names the pipeline step that failed.
	Stage string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
