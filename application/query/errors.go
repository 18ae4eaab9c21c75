package query

import "fmt"

// ErrorKind classifies a WrongTypeError.
type ErrorKind int

const (
	// WrongType - the argument is not a page object, element or collection
	WrongType ErrorKind = iota
	// NonExisting - the argument resolved to an element that is not present
	NonExisting
)

// WrongTypeError reports that a query function was called with an argument
// it cannot operate on. Op names the query function (or function pair) that
// rejected the argument.
type WrongTypeError struct {
	Op   string
	Kind ErrorKind
}

func (e *WrongTypeError) Error() string {
	switch e.Kind {
	case NonExisting:
		return fmt.Sprintf("%s is being called on a non-existent page object or element; use Exists or NotExists instead if absence is expected", e.Op)
	default:
		return fmt.Sprintf("%s may only be called on page objects or elements", e.Op)
	}
}

// newWrongType - builds the wrong-type variant for the given operation
func newWrongType(op string) *WrongTypeError {
	return &WrongTypeError{Op: op, Kind: WrongType}
}

// newNonExisting - builds the non-existing variant for the given operation
func newNonExisting(op string) *WrongTypeError {
	return &WrongTypeError{Op: op, Kind: NonExisting}
}
