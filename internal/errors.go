package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for execution contexts.
var (
	// ErrRunning is returned when an execution context is asked to start
	// while it is already running.
	ErrRunning = errors.New("msgscript: execution context is already running")
	// ErrNotPaused is returned by Resume when the context has no pause point.
	ErrNotPaused = errors.New("msgscript: execution context is not paused")
)

// UnknownVariableError is returned when a binding lookup misses at the root.
type UnknownVariableError struct {
	Name string
}

func (err *UnknownVariableError) Error() string {
	return "msgscript: unknown variable: " + err.Name
}

// InvalidIndexError is returned when execution is asked to resume at an index
// outside the dispatch list.
type InvalidIndexError struct {
	Index int
	Len   int
}

func (err *InvalidIndexError) Error() string {
	return fmt.Sprintf("msgscript: invalid statement index: %d (have %d dispatches)", err.Index, err.Len)
}

// UncaughtThrowError is returned when a thrown object finds no catcher in any
// context up to the root.
type UncaughtThrowError struct {
	Object interface{}
}

func (err *UncaughtThrowError) Error() string {
	return fmt.Sprintf("msgscript: uncaught throw of %v", err.Object)
}

// MethodMissing describes a message that no dispatch strategy could resolve
// against a subject. Dispatch returns it as part of a Result rather than as an
// error; it implements error so callers may choose to raise it.
type MethodMissing struct {
	Subject interface{}
	Name    string
	Args    []interface{}
}

func (m *MethodMissing) Error() string {
	return fmt.Sprintf("msgscript: %s does not respond to %s", typeName(m.Subject), m.Name)
}

// NotCallableError is returned when a message with arguments resolves to a
// property which cannot be called.
type NotCallableError struct {
	Subject interface{}
	Name    string
}

func (err *NotCallableError) Error() string {
	return fmt.Sprintf("msgscript: %s.%s is not callable", typeName(err.Subject), err.Name)
}

// typeName returns a short description of v's type.
func typeName(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case *Object:
		if v.Name() != "" {
			return v.Name()
		}
		return "Object"
	}
	return fmt.Sprintf("%T", v)
}
