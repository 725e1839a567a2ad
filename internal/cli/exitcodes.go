package cli

import (
	"errors"

	"github.com/thenoetrevino/coursekit/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable files or any error that doesn't fit the
	// specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: module or item ids that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Seed files that are not valid YAML.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, overlong titles, bad link URLs.
	ExitValidation = 5
)

// ExitCodeFor maps an error to the exit code a command should return
func ExitCodeFor(err error) int {
	var cmdErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cmdErr):
		return cmdErr.Code
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvariant):
		return ExitDataErr
	default:
		return ExitError
	}
}

// CommandError carries the exit code a failed command should end with
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
