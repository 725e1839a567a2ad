package models

// ============================================================================
// VALIDATION LIMITS
// ============================================================================

const (
	// MaxModuleNameLength bounds module display names
	MaxModuleNameLength = 100

	// MaxItemTitleLength bounds item display titles
	MaxItemTitleLength = 255
)
