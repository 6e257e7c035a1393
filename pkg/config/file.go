package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// overlay holds optional presentation defaults read from a YAML file
// (CONFIG_FILE). Environment variables still win over file values; the file
// only replaces the compiled-in defaults. Pointers distinguish "absent" from
// zero.
type overlay struct {
	GymAPIBaseURL       *string `yaml:"gym_api_base_url"`
	DefaultCapacity     *int    `yaml:"default_capacity"`
	DayStart            *string `yaml:"day_start"`
	DayEnd              *string `yaml:"day_end"`
	SlotMinutes         *int    `yaml:"slot_minutes"`
	MinVisibleSpanMin   *int    `yaml:"min_visible_span_min"`
	SlotPixelHeight     *int    `yaml:"slot_pixel_height"`
	MinEventPixelHeight *int    `yaml:"min_event_pixel_height"`
}

// loadOverlay reads the overlay file if one is configured. A missing or
// unreadable file yields an empty overlay; configuration must still load
// without it.
func loadOverlay(path string) overlay {
	var ov overlay
	if path == "" {
		return ov
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ov
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return overlay{}
	}
	return ov
}

func (o overlay) str(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func (o overlay) num(v *int, fallback int) int {
	if v != nil && *v > 0 {
		return *v
	}
	return fallback
}
