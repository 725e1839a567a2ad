package module

import (
	"fmt"

	"github.com/thenoetrevino/coursekit/internal/models"
)

// Module-related errors. Each is a *models.ValidationError, so callers can
// match either the specific error or models.ErrValidation.
var (
	ErrEmptyName       = &models.ValidationError{Field: "name", Reason: "cannot be empty"}
	ErrInvalidModuleID = &models.ValidationError{Field: "module id", Reason: "cannot be empty"}

	ErrNameTooLong = &models.ValidationError{
		Field:  "name",
		Reason: fmt.Sprintf("cannot exceed %d characters", models.MaxModuleNameLength),
	}
)
