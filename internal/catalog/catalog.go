// Package catalog holds the read-only content the app is seeded with: the
// decoration pool, motivational quotes, tips, and the options the Butler
// persona is generated from. Builtin defaults can be overridden per-file by
// JSON documents in a user-supplied directory.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Decoration struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

type Personality struct {
	Description string   `json:"description"`
	Replicas    []string `json:"replicas"`
}

type ButlerOptions struct {
	Names         []string               `json:"names"`
	Appearances   []string               `json:"appearances"`
	Personalities map[string]Personality `json:"personalities"`
	AgeMin        int                    `json:"age_min"`
	AgeMax        int                    `json:"age_max"`
}

type Catalog struct {
	Decorations []Decoration  `json:"decorations"`
	Quotes      []string      `json:"quotes"`
	Tips        []string      `json:"tips"`
	Butler      ButlerOptions `json:"butler"`
}

// Load returns the builtin catalog with any per-file overrides found in dir.
// An empty dir loads the builtin catalog unchanged. Override files are
// decorations.json, quotes.json, tips.json and butler_options.json; a file
// that exists but fails to parse or validate is an error, not a silent
// fallback.
func Load(dir string) (*Catalog, error) {
	c := Builtin()
	if dir == "" {
		return c, nil
	}

	if err := loadInto(filepath.Join(dir, "decorations.json"), &c.Decorations); err != nil {
		return nil, err
	}
	if err := loadInto(filepath.Join(dir, "quotes.json"), &c.Quotes); err != nil {
		return nil, err
	}
	if err := loadInto(filepath.Join(dir, "tips.json"), &c.Tips); err != nil {
		return nil, err
	}
	if err := loadInto(filepath.Join(dir, "butler_options.json"), &c.Butler); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", dir, err)
	}
	return c, nil
}

func loadInto(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Catalog) Validate() error {
	if len(c.Decorations) == 0 {
		return errors.New("no decorations")
	}
	for _, d := range c.Decorations {
		if d.Name == "" || d.Room == "" {
			return fmt.Errorf("decoration %q needs a name and a room", d.Name)
		}
	}
	if len(c.Quotes) == 0 {
		return errors.New("no quotes")
	}
	if len(c.Tips) == 0 {
		return errors.New("no tips")
	}
	b := c.Butler
	if len(b.Names) == 0 || len(b.Appearances) == 0 || len(b.Personalities) == 0 {
		return errors.New("butler options need names, appearances and personalities")
	}
	if b.AgeMin <= 0 || b.AgeMax < b.AgeMin {
		return fmt.Errorf("butler age range %d-%d is invalid", b.AgeMin, b.AgeMax)
	}
	for flag, p := range b.Personalities {
		if p.Description == "" || len(p.Replicas) == 0 {
			return fmt.Errorf("personality %q needs a description and replicas", flag)
		}
	}
	return nil
}
