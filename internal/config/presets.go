package config

import (
	"fmt"
	"sort"

	"github.com/Dallionking/stepview/internal/tui/styles"
)

// presets are named style bundles. A config's own values win over its preset.
var presets = map[string]Config{
	"default": {
		Colors: ColorsConfig{
			CompletedText:    "#ffffff",
			CurrentText:      "#ffffff",
			NotCompletedText: "#ffffff",
			CompletedLine:    "#ffffff",
			NotCompletedLine: "#ffffff",
		},
	},
	// Red and amber with dark text, from the demo's custom page.
	"custom": {
		Colors: ColorsConfig{
			CompletedText:    "#404040",
			CurrentText:      "#000000",
			NotCompletedText: "#404040",
			CompletedLine:    "#ea655c",
			NotCompletedLine: "#eaac5c",
		},
		Icons: IconsConfig{
			Completed:    IconConfig{Glyph: "✔", Color: "#ea655c"},
			Current:      IconConfig{Glyph: "◉", Color: "#ea655c"},
			NotCompleted: IconConfig{Glyph: "○", Color: "#eaac5c"},
		},
	},
	"gotham": {
		Colors: ColorsConfig{
			CompletedText:    string(styles.StatusOK),
			CurrentText:      string(styles.AccentPrimary),
			NotCompletedText: string(styles.TextMuted),
			CompletedLine:    string(styles.StatusOK),
			NotCompletedLine: string(styles.TextMuted),
		},
		Icons: IconsConfig{
			Completed:    IconConfig{Glyph: "●", Color: string(styles.StatusOK)},
			Current:      IconConfig{Glyph: "◉", Color: string(styles.AccentPrimary)},
			NotCompleted: IconConfig{Glyph: "○", Color: string(styles.TextMuted)},
		},
	},
}

// Preset returns the named preset.
func Preset(name string) (Config, error) {
	p, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (available: %v)", name, ListPresets())
	}
	return p, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
