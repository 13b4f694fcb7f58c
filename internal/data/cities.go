package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hostel-franchise/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var embeddedCities []byte

// CityList is the on-disk shape of the city table (YAML or JSON).
type CityList struct {
	UpdatedAt string       `json:"updated_at" yaml:"updated_at"`
	Cities    []model.City `json:"cities" yaml:"cities"`
}

// Table is an immutable, ordered lookup of city profiles. Accessors return
// copies so callers cannot mutate the shared table.
type Table struct {
	updatedAt string
	order     []string
	byID      map[string]model.City
}

// NewTable indexes cities by id, keeping input order. Duplicate or empty ids
// and unknown types are rejected.
func NewTable(list CityList) (*Table, error) {
	t := &Table{
		updatedAt: list.UpdatedAt,
		order:     make([]string, 0, len(list.Cities)),
		byID:      make(map[string]model.City, len(list.Cities)),
	}
	for i, c := range list.Cities {
		if c.ID == "" {
			return nil, fmt.Errorf("city %d: id is required", i)
		}
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("city %q: duplicate id", c.ID)
		}
		if !c.Type.Valid() {
			return nil, fmt.Errorf("city %q: unknown type %q", c.ID, c.Type)
		}
		t.order = append(t.order, c.ID)
		t.byID[c.ID] = copyCity(c)
	}
	return t, nil
}

// Default returns the embedded table. It panics only if the embedded YAML is
// broken, which the tests guard against.
func Default() *Table {
	t, err := parseTable(embeddedCities, ".yaml")
	if err != nil {
		panic(fmt.Errorf("embedded cities.yaml: %w", err))
	}
	return t
}

// LoadTable reads a city table from a YAML or JSON file (chosen by extension).
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cities file: %w", err)
	}
	t, err := parseTable(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse cities file: %w", err)
	}
	return t, nil
}

// LoadTableOrDefault loads path when set, else the embedded table.
func LoadTableOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadTable(path)
}

// SaveTable writes the table to path as YAML or JSON (by extension).
func SaveTable(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	list := CityList{UpdatedAt: t.updatedAt, Cities: t.All()}
	var (
		raw []byte
		err error
	)
	if isJSON(filepath.Ext(path)) {
		raw, err = json.MarshalIndent(list, "", "  ")
	} else {
		raw, err = yaml.Marshal(list)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal cities: %w", err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cities file: %w", err)
	}
	return nil
}

// GetDefaultCitiesPath returns CITIES_FILE, or "" for the embedded table.
func GetDefaultCitiesPath() string {
	return os.Getenv("CITIES_FILE")
}

func (t *Table) UpdatedAt() string { return t.updatedAt }
func (t *Table) Len() int          { return len(t.order) }

func (t *Table) Lookup(id string) (model.City, bool) {
	c, ok := t.byID[id]
	if !ok {
		return model.City{}, false
	}
	return copyCity(c), true
}

// ByName matches the display name, case-insensitively.
func (t *Table) ByName(name string) (model.City, bool) {
	for _, id := range t.order {
		if strings.EqualFold(t.byID[id].Name, name) {
			return copyCity(t.byID[id]), true
		}
	}
	return model.City{}, false
}

func (t *Table) All() []model.City {
	return t.filter(func(model.City) bool { return true })
}

// Featured returns the carousel slides, in table order.
func (t *Table) Featured() []model.City {
	return t.filter(func(c model.City) bool { return c.Featured })
}

// Extended returns the non-featured cities offered in the custom slide picker.
func (t *Table) Extended() []model.City {
	return t.filter(func(c model.City) bool { return !c.Featured })
}

func (t *Table) OfType(typ model.CityType) []model.City {
	return t.filter(func(c model.City) bool { return c.Type == typ })
}

func (t *Table) filter(keep func(model.City) bool) []model.City {
	out := make([]model.City, 0, len(t.order))
	for _, id := range t.order {
		c := t.byID[id]
		if keep(c) {
			out = append(out, copyCity(c))
		}
	}
	return out
}

func parseTable(raw []byte, ext string) (*Table, error) {
	var list CityList
	if isJSON(ext) {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return NewTable(list)
}

func isJSON(ext string) bool {
	return strings.EqualFold(ext, ".json")
}

func copyCity(c model.City) model.City {
	c.Bullets = append([]string(nil), c.Bullets...)
	return c
}
