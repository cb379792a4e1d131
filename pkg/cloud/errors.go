package cloud

import (
	"errors"
	"fmt"
)

// Sentinel errors for browsing operations.
var (
	// ErrNoContainer indicates the container name does not exist.
	ErrNoContainer = errors.New("container not found")

	// ErrNoObject indicates the object path does not exist within an
	// existing container.
	ErrNoObject = errors.New("object not found")
)

// Error wraps vendor adapter failures with operation context.
//
// Translated vendor errors carry one of the sentinel errors above in
// Err; anything the adapter could not classify keeps the original
// vendor error so its message is preserved.
type Error struct {
	// Op is the operation that failed (e.g., "Objects", "Read").
	Op string

	// Container is the container name, if applicable.
	Container string

	// Object is the object path, if applicable.
	Object string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("cloud %s: %s/%s: %v", e.Op, e.Container, e.Object, e.Err)
	}
	if e.Container != "" {
		return fmt.Sprintf("cloud %s: %s: %v", e.Op, e.Container, e.Err)
	}
	return fmt.Sprintf("cloud %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNoContainer returns true if the error indicates a missing container.
func IsNoContainer(err error) bool {
	return errors.Is(err, ErrNoContainer)
}

// IsNoObject returns true if the error indicates a missing object.
func IsNoObject(err error) bool {
	return errors.Is(err, ErrNoObject)
}
