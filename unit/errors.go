package unit

// InvalidInputError is the single failure kind produced by the physics core.
// It carries a plain, side-effect-free reason string that is safe to surface
// to any caller; host-specific translation (HTTP status, exit code, ...)
// happens outside the core.
type InvalidInputError struct {
	Reason string
}

// Error returns the reason verbatim.
func (e *InvalidInputError) Error() string { return e.Reason }

// InvalidInput builds an InvalidInputError with the given reason.
func InvalidInput(reason string) error { return &InvalidInputError{Reason: reason} }
