package oracle

import "fmt"

// UnavailableError indicates an external statistical tool could not be found
// or did not respond within its allowed time
type UnavailableError struct {
	Tool string
	Err  error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("oracle %s unavailable: %v", e.Tool, e.Err)
}

func (e UnavailableError) Unwrap() error {
	return e.Err
}
