package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// effective is the YAML shape of a merged Config.
type effective struct {
	VisibleRange       []int   `yaml:"visible-range,flow"`
	SlideScale         float64 `yaml:"slide-scale"`
	DragThreshold      float64 `yaml:"drag-threshold"`
	TransitionDuration string  `yaml:"transition-duration"`
	WheelDebounce      string  `yaml:"wheel-debounce"`
	CellHeight         float64 `yaml:"cell-height"`
}

// Marshal renders the effective configuration using the same keys the
// config files accept.
func Marshal(c *Config) ([]byte, error) {
	o := c.Carousel
	return yaml.Marshal(effective{
		VisibleRange:       o.VisibleRange,
		SlideScale:         o.SlideScale,
		DragThreshold:      o.DragThreshold,
		TransitionDuration: o.TransitionDuration.String(),
		WheelDebounce:      o.WheelDebounce.String(),
		CellHeight:         c.CellHeight,
	})
}

// WriteTemplate writes a project config with every key commented out at its
// default value. Existing files are left alone.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	d := Default()
	var sb strings.Builder
	writeConfigHeader(&sb)
	writeCommentedKey(&sb,
		"# Offsets from the focused slide that stay visible.",
		"visible-range", formatInts(d.Carousel.VisibleRange))
	writeCommentedKey(&sb,
		"# Size of visible neighbours relative to the focused slide, in (0,1].",
		"slide-scale", fmt.Sprintf("%g", d.Carousel.SlideScale))
	writeCommentedKey(&sb,
		"# Pointer travel in pixels before a drag moves the carousel.",
		"drag-threshold", fmt.Sprintf("%g", d.Carousel.DragThreshold))
	writeCommentedKey(&sb,
		"# Duration of the slide transition. 0 disables it.",
		"transition-duration", d.Carousel.TransitionDuration.String())
	writeCommentedKey(&sb,
		"# Quiet period after the last wheel event before the carousel moves.",
		"wheel-debounce", d.Carousel.WheelDebounce.String())
	writeCommentedKey(&sb,
		"# Height of one terminal row in pixels, used for drag distances.",
		"cell-height", fmt.Sprintf("%g", d.CellHeight))

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// writeConfigHeader writes the shared file header comment block.
func writeConfigHeader(sb *strings.Builder) {
	sb.WriteString("# Carousel config for this directory.\n")
	sb.WriteString("# Values here override the global config; command line flags\n")
	sb.WriteString("# override both. Unknown keys are ignored.\n\n")
}

func writeCommentedKey(sb *strings.Builder, comment, key, value string) {
	fmt.Fprintf(sb, "%s\n# %s: %s\n\n", comment, key, value)
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
