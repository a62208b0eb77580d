// Package deck loads the slides shown by the carousel.
package deck

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bernd/carousel/carousel"
	"gopkg.in/yaml.v3"
)

//go:embed deck.yaml
var defaultDeckYAML []byte

// Entry is one slide as written in a deck file.
type Entry struct {
	Title   string `yaml:"title" toml:"title"`
	Content string `yaml:"content" toml:"content"`
}

// Deck is an ordered list of slides with an optional title.
type Deck struct {
	Title   string  `yaml:"title" toml:"title"`
	Entries []Entry `yaml:"slides" toml:"slides"`
	Source  string  `yaml:"-" toml:"-"`
}

// Default returns the built-in deck.
func Default() *Deck {
	var d Deck
	if err := yaml.Unmarshal(defaultDeckYAML, &d); err != nil {
		panic("deck.yaml: " + err.Error())
	}
	d.Source = "built-in"
	return &d
}

// Load reads a deck file. The format is chosen by extension: .toml files are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var d Deck
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, fmt.Errorf("parse deck %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse deck %s: %w", path, err)
		}
	}
	d.Source = path
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &d, nil
}

// Slides converts the deck into carousel slides. Untitled entries are named
// after their position.
func (d *Deck) Slides() []carousel.Slide {
	slides := make([]carousel.Slide, len(d.Entries))
	for i, e := range d.Entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = fmt.Sprintf("Slide %d", i+1)
		}
		slides[i] = carousel.Slide{Index: i, Title: title, Content: e.Content}
	}
	return slides
}
