package model

import "fmt"

// Code is a machine-readable warning code. Warnings describe faults the
// core recovered from; they never interrupt an operation.
type Code string

const (
	CodeMissingRecipe        Code = "MISSING_RECIPE"
	CodeInvalidDimension     Code = "INVALID_DIMENSION"
	CodeMissingMaterial      Code = "MISSING_MATERIAL"
	CodeUnresolvedCollision  Code = "UNRESOLVED_COLLISION"
	CodeOutOfBounds          Code = "OUT_OF_BOUNDS"
	CodeRoomShapeApproximate Code = "ROOM_SHAPE_APPROXIMATED"
)

// Warning is a recovered, non-fatal condition attached to a result.
type Warning struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// NewWarning creates a Warning with a formatted message.
func NewWarning(code Code, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// HasWarning reports whether ws contains a warning with the given code.
func HasWarning(ws []Warning, code Code) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}
