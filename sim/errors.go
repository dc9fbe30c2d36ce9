package sim

// ValidationError reports an invalid construction parameter, such as a
// building with fewer than two floors or a trip outside the building. It is
// fatal and surfaced to the caller immediately.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// OperationError reports a contract violation by the simulation driver,
// such as stepping the car with no pending demand. It indicates a bug in the
// caller and terminates the run; it is never retried.
type OperationError struct {
	Msg string
}

func (e *OperationError) Error() string { return e.Msg }

// errTooFewFloors is shared by every constructor that takes a floor count.
var errTooFewFloors = &ValidationError{Msg: "Floors count must be more than 1"}
