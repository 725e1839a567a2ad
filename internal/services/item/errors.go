package item

import (
	"fmt"

	"github.com/thenoetrevino/coursekit/internal/models"
)

// Item-related errors. Each is a *models.ValidationError, so callers can
// match either the specific error or models.ErrValidation.
var (
	ErrEmptyTitle    = &models.ValidationError{Field: "title", Reason: "cannot be empty"}
	ErrInvalidType   = &models.ValidationError{Field: "type", Reason: "must be link or file"}
	ErrInvalidURL    = &models.ValidationError{Field: "url", Reason: "must be an absolute http or https URL"}
	ErrEmptyFileName = &models.ValidationError{Field: "file", Reason: "cannot be empty"}
	ErrUnknownModule = &models.ValidationError{Field: "module", Reason: "does not exist"}

	ErrTitleTooLong = &models.ValidationError{
		Field:  "title",
		Reason: fmt.Sprintf("cannot exceed %d characters", models.MaxItemTitleLength),
	}
)
