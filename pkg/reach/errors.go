package reach

import "fmt"

// EmptyEntrySetError reports a traversal requested with no entry points.
// An empty entry set is a configuration error, not "all nodes are roots".
type EmptyEntrySetError struct{}

func (e *EmptyEntrySetError) Error() string {
	return "no entry points configured"
}

// UnknownEntryPointError reports an entry point that names no declared route
type UnknownEntryPointError struct {
	Path string
}

func (e *UnknownEntryPointError) Error() string {
	return fmt.Sprintf("entry point %q is not a declared route", e.Path)
}

// AnalysisTimeoutError reports a traversal aborted because the caller's
// deadline expired
type AnalysisTimeoutError struct {
	Err error
}

func (e *AnalysisTimeoutError) Error() string {
	return fmt.Sprintf("analysis aborted: %v", e.Err)
}

func (e *AnalysisTimeoutError) Unwrap() error {
	return e.Err
}
