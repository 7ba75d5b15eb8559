package harness

// Failure is the error raised when an assertion's condition is not met.
//
// It travels by panic from the assertion site to the test case runner,
// which absorbs it and reports the case as failed. Failures exist only for
// the duration of that unwind; they are never persisted or returned.
type Failure struct {
	// Message describes the unmet condition, optionally followed by the
	// stringified operand values.
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}
