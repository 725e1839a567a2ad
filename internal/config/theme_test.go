package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/coursekit/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  match_bg: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "coursekit-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.MatchBg != "#0000FF" {
		t.Errorf("Expected match_bg to be #0000FF, got %s", cfg.ColorScheme.MatchBg)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestColorSchemeApplyDefaults(t *testing.T) {
	tests := []struct {
		name   string
		scheme colors.ColorScheme
		want   *colors.ColorScheme
	}{
		{"empty uses default", colors.ColorScheme{}, colors.Default()},
		{"named preset", colors.ColorScheme{Preset: "monochrome"}, colors.Monochrome()},
		{"unknown preset falls back", colors.ColorScheme{Preset: "neon"}, colors.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scheme
			got.ApplyDefaults()
			if got.Title != tt.want.Title || got.MatchBg != tt.want.MatchBg {
				t.Errorf("ApplyDefaults() = %+v, want colors of %s", got, tt.want.Preset)
			}
		})
	}
}

func TestColorSchemeKeepsCustomValues(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want custom value kept", scheme.Accent)
	}
	if scheme.Normal != colors.Monochrome().Normal {
		t.Errorf("Normal = %s, want monochrome default", scheme.Normal)
	}
}
