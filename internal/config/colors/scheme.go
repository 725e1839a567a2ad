package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // creation forms
	Edit   string `yaml:"edit"`   // edit forms
	Delete string `yaml:"delete"` // delete confirmations

	// Course body
	ModuleBorder   string `yaml:"module_border"`
	ItemBorder     string `yaml:"item_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"` // entity being dragged

	// Search match highlight
	MatchFg string `yaml:"match_fg"`
	MatchBg string `yaml:"match_bg"`

	// Outline panel
	OutlineActive string `yaml:"outline_active"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	for _, f := range c.pairs(*preset) {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}

// MergeFrom overrides c with every color other sets
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, f := range c.pairs(other) {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

type colorPair struct {
	dst *string
	src string
}

// pairs lines up each color field of c with the same field of other
func (c *ColorScheme) pairs(other ColorScheme) []colorPair {
	return []colorPair{
		{&c.Accent, other.Accent},
		{&c.Create, other.Create},
		{&c.Edit, other.Edit},
		{&c.Delete, other.Delete},
		{&c.ModuleBorder, other.ModuleBorder},
		{&c.ItemBorder, other.ItemBorder},
		{&c.SelectedBorder, other.SelectedBorder},
		{&c.SelectedBg, other.SelectedBg},
		{&c.DragBorder, other.DragBorder},
		{&c.MatchFg, other.MatchFg},
		{&c.MatchBg, other.MatchBg},
		{&c.OutlineActive, other.OutlineActive},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.InfoFg, other.InfoFg},
		{&c.InfoBg, other.InfoBg},
		{&c.ErrorFg, other.ErrorFg},
		{&c.ErrorBg, other.ErrorBg},
	}
}
