package graphics

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexIndex is returned when a vertex outside the used region is
	// requested.
	ErrVertexIndex = errors.New("graphics: vertex index out of range")
	// ErrDegenerateViewport is returned for a zero-sized viewport or an
	// unusable frustum.
	ErrDegenerateViewport = errors.New("graphics: degenerate viewport")
)

// InitializationError reports a failure while bringing up the window,
// context or GL function pointers.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("renderer initialization failed (%s): %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// CompilationError carries the driver log of a shader that failed to
// compile or a program that failed to link.
type CompilationError struct {
	File string
	Log  string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s shader compilation failed\n%s", e.File, e.Log)
}

// UnsupportedBackendError is returned by the factory for backends that are
// declared but not implemented.
type UnsupportedBackendError struct {
	Type Type
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("unsupported renderer backend %s", e.Type)
}
