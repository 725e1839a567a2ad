package huhforms

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/coursekit/internal/models"
)

// CreateModuleForm creates a huh form for adding or renaming a module.
// The form contains a single input field for the module name and saves on
// completion.
func CreateModuleForm(name *string, isEdit bool) *huh.Form {
	title := "New Module Name"
	if isEdit {
		title = "Rename Module"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title(title).
				Placeholder("Enter module name...").
				Validate(validateModuleName).
				Value(name),
		),
	)
}

func validateModuleName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(s) > models.MaxModuleNameLength {
		return fmt.Errorf("name must be at most %d characters", models.MaxModuleNameLength)
	}
	return nil
}
