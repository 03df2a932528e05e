package befunge

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned when / or % executes with a zero divisor.
// The run aborts; Befunge-93 leaves the behavior to the host, and this
// implementation makes the fault explicit instead of trapping.
var ErrDivideByZero = errors.New("division by zero")

// CoordinateError reports a g or p command whose popped coordinate lies
// outside the playfield. Runtime cell access is bounds-checked, never
// wrapped; only program counter movement is toroidal.
type CoordinateError struct {
	Axis  string // "x" or "y"
	Value int64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid %s coordinate: %d", e.Axis, e.Value)
}

// CellValueError reports a p command whose popped value does not fit in a
// single playfield cell (one byte).
type CellValueError struct {
	Value int64
}

func (e *CellValueError) Error() string {
	return fmt.Sprintf("value %d does not fit in a playfield cell", e.Value)
}

// LiteralError reports a literal cell executed outside string mode whose
// byte is not a decimal digit. Such cells carry no numeric value.
type LiteralError struct {
	Byte byte
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("cannot execute literal %q outside string mode", e.Byte)
}
