package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/bernd/carousel/carousel"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	AppDirName      = "carousel"
	ProjectFileName = ".carousel.yaml"

	// DefaultCellHeight is the assumed height of one terminal row in pixels,
	// used to translate mouse rows into drag distances.
	DefaultCellHeight = 16.0
)

// Overrides holds optional values for every recognized key. A nil field
// leaves the current value alone; a set field replaces it entirely.
type Overrides struct {
	VisibleRange       []int          `koanf:"visible-range"`
	SlideScale         *float64       `koanf:"slide-scale"`
	DragThreshold      *float64       `koanf:"drag-threshold"`
	TransitionDuration *time.Duration `koanf:"transition-duration"`
	WheelDebounce      *time.Duration `koanf:"wheel-debounce"`
	CellHeight         *float64       `koanf:"cell-height"`
}

// Config is the effective configuration after all sources are merged.
type Config struct {
	Carousel   carousel.Options
	CellHeight float64
	Sources    []string // files that contributed, in load order
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Carousel:   carousel.DefaultOptions(),
		CellHeight: DefaultCellHeight,
	}
}

// Load merges the global and project files over the defaults. Missing files
// are skipped.
func Load(globalPath, projectPath string) (*Config, error) {
	cfg := Default()

	for _, path := range []string{globalPath, projectPath} {
		if path == "" {
			continue
		}
		var o Overrides
		found, err := loadFile(path, &o)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if !found {
			continue
		}
		cfg.Apply(o)
		cfg.Sources = append(cfg.Sources, path)
	}

	return cfg, nil
}

// loadFile parses a YAML file into target, silently skipping missing files
// so callers don't need to check existence first.
func loadFile(path string, target any) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return false, err
	}
	return true, k.Unmarshal("", target)
}

// Apply replaces every value set in o.
func (c *Config) Apply(o Overrides) {
	if o.VisibleRange != nil {
		c.Carousel.VisibleRange = append([]int(nil), o.VisibleRange...)
	}
	if o.SlideScale != nil {
		c.Carousel.SlideScale = *o.SlideScale
	}
	if o.DragThreshold != nil {
		c.Carousel.DragThreshold = *o.DragThreshold
	}
	if o.TransitionDuration != nil {
		c.Carousel.TransitionDuration = *o.TransitionDuration
	}
	if o.WheelDebounce != nil {
		c.Carousel.WheelDebounce = *o.WheelDebounce
	}
	if o.CellHeight != nil {
		c.CellHeight = *o.CellHeight
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	o := c.Carousel
	if o.SlideScale <= 0 || o.SlideScale > 1 {
		return fmt.Errorf("slide-scale must be in (0,1], got %g", o.SlideScale)
	}
	if o.DragThreshold <= 0 {
		return fmt.Errorf("drag-threshold must be positive, got %g", o.DragThreshold)
	}
	if o.TransitionDuration < 0 {
		return fmt.Errorf("transition-duration must not be negative, got %s", o.TransitionDuration)
	}
	if o.WheelDebounce <= 0 {
		return fmt.Errorf("wheel-debounce must be positive, got %s", o.WheelDebounce)
	}
	if c.CellHeight <= 0 {
		return fmt.Errorf("cell-height must be positive, got %g", c.CellHeight)
	}
	return nil
}

func DefaultGlobalPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "config.yaml")
}

func DefaultProjectPath(dir string) string {
	return filepath.Join(dir, ProjectFileName)
}
