package diag

import (
	"errors"
	"fmt"
)

// StructuralError aborts an extraction run: an anchor the extractors rely on
// exists but has the wrong shape.
type StructuralError struct {
	Code     Code
	Location Location
	Reason   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code.ID(), e.Location, e.Reason)
}

// Structuralf builds a StructuralError with a formatted reason.
func Structuralf(code Code, loc Location, format string, args ...any) *StructuralError {
	return &StructuralError{Code: code, Location: loc, Reason: fmt.Sprintf(format, args...)}
}

// AsStructural unwraps err to a *StructuralError.
func AsStructural(err error) (*StructuralError, bool) {
	var se *StructuralError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
