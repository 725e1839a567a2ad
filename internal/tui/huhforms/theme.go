// Package huhforms builds the editor's modal forms
package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/coursekit/internal/config/colors"
)

// Intent is what a form does to the course; it picks the frame color
type Intent int

const (
	IntentCreate Intent = iota
	IntentEdit
)

// frame is the scheme color framing a form of this intent
func (i Intent) frame(scheme colors.ColorScheme) string {
	if i == IntentEdit {
		return scheme.Edit
	}
	return scheme.Create
}

// FormTheme styles a form with the course editor's palette. Field titles
// take the module color and the submit button uses the search match pair.
func FormTheme(scheme colors.ColorScheme, intent Intent) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		frame := lipgloss.Color(intent.frame(scheme))
		heading := lipgloss.Color(scheme.ModuleBorder)
		muted := lipgloss.Color(scheme.Subtle)
		text := lipgloss.Color(scheme.Normal)
		failure := lipgloss.Color(scheme.ErrorFg)

		f := &t.Focused
		f.Base = f.Base.BorderForeground(frame)
		f.Title = f.Title.Foreground(heading).Bold(true)
		f.Description = f.Description.Foreground(lipgloss.Color(scheme.ItemBorder))
		f.ErrorIndicator = f.ErrorIndicator.Foreground(failure)
		f.ErrorMessage = f.ErrorMessage.Foreground(failure)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(lipgloss.Color(scheme.DragBorder))
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(muted)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(frame)
		f.TextInput.Text = f.TextInput.Text.Foreground(text)

		f.FocusedButton = f.FocusedButton.
			Foreground(lipgloss.Color(scheme.MatchFg)).
			Background(lipgloss.Color(scheme.MatchBg)).
			Bold(true)
		f.BlurredButton = f.BlurredButton.
			Foreground(text).
			Background(lipgloss.Color(scheme.SelectedBg))

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

		return t
	})
}
