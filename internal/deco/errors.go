package deco

import (
	"fmt"

	"github.com/alexanderramin/fathom/internal/domain"
)

// CeilingError reports a stop that did not clear within the cap.
type CeilingError struct {
	Depth   float64
	Minutes int
	// Leading is the 1-based compartment still over tolerance.
	Leading int
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("stop at %gm not cleared after %d min (compartment %d)", e.Depth, e.Minutes, e.Leading)
}

func (e *CeilingError) Unwrap() error { return domain.ErrUnresolvableCeiling }
