package huhforms

import (
	"fmt"
	"strings"

	"charm.land/huh/v2"
)

// CreateLinkForm creates a huh form for adding a link. The title is
// optional and falls back to the URL.
func CreateLinkForm(title, url *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("url").
				Title("Link URL").
				Placeholder("https://...").
				Validate(required("URL")).
				Value(url),
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Defaults to the URL").
				Value(title),
		),
	)
}

// CreateUploadForm creates a huh form for adding a file. The title is
// optional and falls back to the file's base name.
func CreateUploadForm(title, fileName *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("file").
				Title("File").
				Placeholder("path/to/handout.pdf").
				Validate(required("file name")).
				Value(fileName),
			huh.NewInput().
				Key("title").
				Title("Title").
				Placeholder("Defaults to the file name").
				Value(title),
		),
	)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
