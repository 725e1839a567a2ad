package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/coursekit/internal/config"
)

// keyMap defines all keyboard bindings for the editor
type keyMap struct {
	// Modules
	AddModule    key.Binding
	EditModule   key.Binding
	ToggleModule key.Binding

	// Items
	AddLink     key.Binding
	AddUpload   key.Binding
	PreviewItem key.Binding

	Delete key.Binding

	// Drag
	Grab       key.Binding
	CancelDrag key.Binding

	// Navigation
	PrevRow      key.Binding
	NextRow      key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	FocusOutline key.Binding
	Search       key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

// newKeyMap builds bindings from the configured key mappings. Arrow keys
// always work for row movement alongside the configured keys.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddModule: key.NewBinding(
			key.WithKeys(km.AddModule),
			key.WithHelp(km.AddModule, "add module"),
		),
		EditModule: key.NewBinding(
			key.WithKeys(km.EditModule),
			key.WithHelp(km.EditModule, "rename module"),
		),
		ToggleModule: key.NewBinding(
			key.WithKeys(km.ToggleModule),
			key.WithHelp(km.ToggleModule, "expand/collapse"),
		),
		AddLink: key.NewBinding(
			key.WithKeys(km.AddLink),
			key.WithHelp(km.AddLink, "add link"),
		),
		AddUpload: key.NewBinding(
			key.WithKeys(km.AddUpload),
			key.WithHelp(km.AddUpload, "add file"),
		),
		PreviewItem: key.NewBinding(
			key.WithKeys(km.PreviewItem),
			key.WithHelp(km.PreviewItem, "preview item"),
		),
		Delete: key.NewBinding(
			key.WithKeys(km.Delete),
			key.WithHelp(km.Delete, "delete"),
		),
		Grab: key.NewBinding(
			key.WithKeys(withSpaceAlias(km.Grab)...),
			key.WithHelp(km.Grab, "grab/drop"),
		),
		CancelDrag: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(km.CancelDrag, "cancel drag"),
		),
		PrevRow: key.NewBinding(
			key.WithKeys(km.PrevRow, "up"),
			key.WithHelp(km.PrevRow+"/↑", "up"),
		),
		NextRow: key.NewBinding(
			key.WithKeys(km.NextRow, "down"),
			key.WithHelp(km.NextRow+"/↓", "down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys(km.ScrollUp),
			key.WithHelp(km.ScrollUp, "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys(km.ScrollDown),
			key.WithHelp(km.ScrollDown, "scroll down"),
		),
		FocusOutline: key.NewBinding(
			key.WithKeys(km.FocusOutline),
			key.WithHelp(km.FocusOutline, "outline"),
		),
		Search: key.NewBinding(
			key.WithKeys(km.Search),
			key.WithHelp(km.Search, "search"),
		),
		ShowHelp: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// withSpaceAlias also accepts a literal space wherever "space" is bound
func withSpaceAlias(k string) []string {
	if k == "space" || k == " " {
		return []string{"space", " "}
	}
	return []string{k}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Search, k.FocusOutline, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddModule, k.EditModule, k.ToggleModule, k.Delete},
		{k.AddLink, k.AddUpload, k.PreviewItem},
		{k.Grab, k.CancelDrag},
		{k.PrevRow, k.NextRow, k.ScrollUp, k.ScrollDown},
		{k.FocusOutline, k.Search, k.ShowHelp, k.Quit},
	}
}
