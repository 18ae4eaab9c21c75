package interfaces

import "fmt"

// PageLoadError reports a failure of the underlying browser backend while
// looking up or reading an element: driver IO errors, stale handles,
// evaluation failures. It is distinct from an argument being the wrong kind
// of value and is never wrapped by the query layer.
type PageLoadError struct {
	Op  string
	Err error
}

func (e *PageLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("page load failure in %s", e.Op)
	}
	return fmt.Sprintf("page load failure in %s: %v", e.Op, e.Err)
}

func (e *PageLoadError) Unwrap() error {
	return e.Err
}
