package cmd

import "fmt"

// Exit codes returned through ExitError.
const (
	ExitCodeFailure  = 1
	ExitCodeLoad     = 2
	ExitCodeNotFound = 3
)

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code    int
	Message string
}

// NewExitError creates an ExitError.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}
