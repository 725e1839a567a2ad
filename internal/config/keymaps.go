package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Modules
	AddModule    string `yaml:"add_module"`
	EditModule   string `yaml:"edit_module"`
	ToggleModule string `yaml:"toggle_module"`

	// Items
	AddLink     string `yaml:"add_link"`
	AddUpload   string `yaml:"add_upload"`
	PreviewItem string `yaml:"preview_item"`

	// Shared
	Delete string `yaml:"delete"`

	// Drag
	Grab       string `yaml:"grab"` // also drops while dragging
	CancelDrag string `yaml:"cancel_drag"`

	// Navigation
	PrevRow      string `yaml:"prev_row"`
	NextRow      string `yaml:"next_row"`
	ScrollUp     string `yaml:"scroll_up"`
	ScrollDown   string `yaml:"scroll_down"`
	FocusOutline string `yaml:"focus_outline"`
	Search       string `yaml:"search"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Modules
		AddModule:    "m",
		EditModule:   "e",
		ToggleModule: "enter",

		// Items
		AddLink:     "a",
		AddUpload:   "u",
		PreviewItem: "p",

		// Shared
		Delete: "d",

		// Drag
		Grab:       "space",
		CancelDrag: "esc",

		// Navigation
		PrevRow:      "k",
		NextRow:      "j",
		ScrollUp:     "ctrl+u",
		ScrollDown:   "ctrl+d",
		FocusOutline: "tab",
		Search:       "/",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, f := range []struct {
		dst *string
		src string
	}{
		{&k.AddModule, defaults.AddModule},
		{&k.EditModule, defaults.EditModule},
		{&k.ToggleModule, defaults.ToggleModule},
		{&k.AddLink, defaults.AddLink},
		{&k.AddUpload, defaults.AddUpload},
		{&k.PreviewItem, defaults.PreviewItem},
		{&k.Delete, defaults.Delete},
		{&k.Grab, defaults.Grab},
		{&k.CancelDrag, defaults.CancelDrag},
		{&k.PrevRow, defaults.PrevRow},
		{&k.NextRow, defaults.NextRow},
		{&k.ScrollUp, defaults.ScrollUp},
		{&k.ScrollDown, defaults.ScrollDown},
		{&k.FocusOutline, defaults.FocusOutline},
		{&k.Search, defaults.Search},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}
