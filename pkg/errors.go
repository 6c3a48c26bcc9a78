package validation

import (
	"errors"
	"fmt"
)

var (
	ErrShortHit        = errors.New("hit identifier too short")
	ErrMalformedHit    = errors.New("malformed hit identifier")
	ErrUnknownWall     = errors.New("unknown wall type")
	ErrMissingMapField = errors.New("average field has no map field")
	ErrUnknownField    = errors.New("unknown field")
)

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

func (e *ErrCreateGroup) Unwrap() error { return e.Err }

// ErrCreateTable represents an error when creating a table or dataset.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}

func (e *ErrCreateTable) Unwrap() error { return e.Err }

// ErrBadField is returned when a hit identifier field is not numeric.
type ErrBadField struct {
	Hit   string
	Index int
	Err   error
}

func (e *ErrBadField) Error() string {
	return fmt.Sprintf("hit %q: field %d is not a number: %v", e.Hit, e.Index, e.Err)
}

func (e *ErrBadField) Unwrap() error { return e.Err }

// ErrOutOfBounds is returned when a decoded cell lies outside its grid.
type ErrOutOfBounds struct {
	Wall WallID
	X, Y int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("cell (%d,%d) is outside the %v grid", e.X, e.Y, e.Wall)
}

// ErrLengthMismatch is returned in average mode when the hit list and the
// weight list of one event differ in length.
type ErrLengthMismatch struct {
	Field   string
	Event   int64
	Hits    int
	Weights int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("field %q, event %d: %d hits but %d weights", e.Field, e.Event, e.Hits, e.Weights)
}
