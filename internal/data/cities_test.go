package data

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"hostel-franchise/internal/model"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	if tbl.Len() != 16 {
		t.Fatalf("Len = %d, want 16", tbl.Len())
	}

	featured := tbl.Featured()
	wantFeatured := []string{"Bangkok", "Phuket", "Chiang Mai", "Krabi", "Koh Phangan", "Koh Tao"}
	if len(featured) != len(wantFeatured) {
		t.Fatalf("Featured = %d, want %d", len(featured), len(wantFeatured))
	}
	for i, name := range wantFeatured {
		if featured[i].Name != name {
			t.Errorf("Featured[%d] = %q, want %q", i, featured[i].Name, name)
		}
	}

	ext := tbl.Extended()
	if len(ext) != 10 || ext[0].Name != "Pai" {
		t.Errorf("Extended[0] = %+v (len %d), want Pai of 10", ext[0].Name, len(ext))
	}

	for _, c := range tbl.All() {
		if c.ADRRange().IsZero() {
			t.Errorf("%s: ADR range %q did not parse", c.ID, c.ADR)
		}
		if c.OccupancyRange().IsZero() {
			t.Errorf("%s: occupancy range %q did not parse", c.ID, c.Occupancy)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	tbl := Default()
	c, ok := tbl.Lookup("phuket")
	if !ok {
		t.Fatal("phuket not found")
	}
	c.Bullets[0] = "mutated"
	c.Name = "mutated"

	again, _ := tbl.Lookup("phuket")
	if again.Name != "Phuket" || again.Bullets[0] == "mutated" {
		t.Errorf("table mutated through copy: %+v", again)
	}

	if _, ok := tbl.Lookup("atlantis"); ok {
		t.Error("Lookup(atlantis) = ok, want missing")
	}
}

func TestByName(t *testing.T) {
	c, ok := Default().ByName("koh tao")
	if !ok || c.ID != "kohtao" {
		t.Errorf("ByName(koh tao) = %+v, %v", c, ok)
	}
}

func TestOfType(t *testing.T) {
	wellness := Default().OfType(model.CityWellness)
	if len(wellness) != 2 {
		t.Errorf("wellness = %d, want 2", len(wellness))
	}
}

func TestNewTableRejectsBadRows(t *testing.T) {
	cases := []CityList{
		{Cities: []model.City{{Name: "No ID", Type: model.CityUrban}}},
		{Cities: []model.City{{ID: "a", Type: model.CityUrban}, {ID: "a", Type: model.CityUrban}}},
		{Cities: []model.City{{ID: "a", Type: "desert"}}},
	}
	for i, list := range cases {
		if _, err := NewTable(list); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestSaveAndLoadTable(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cities.yaml", "nested/cities.json"} {
		path := filepath.Join(dir, name)
		if err := SaveTable(Default(), path); err != nil {
			t.Fatalf("SaveTable(%s): %v", name, err)
		}
		loaded, err := LoadTable(path)
		if err != nil {
			t.Fatalf("LoadTable(%s): %v", name, err)
		}
		if loaded.Len() != 16 {
			t.Errorf("%s: Len = %d, want 16", name, loaded.Len())
		}
		c, _ := loaded.Lookup("kohlipe")
		if c.Lat != 6.4881 || c.ADR != "฿500–900" {
			t.Errorf("%s: kohlipe round-trip mismatch: %+v", name, c)
		}
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadTable(missing) err = %v, want not-exist", err)
	}
}

func TestScenarios(t *testing.T) {
	s, err := Scenarios()
	if err != nil {
		t.Fatal(err)
	}
	keys := []string{"phuket", "bangkok", "chiangmai", "custom"}
	if len(s) != len(keys) {
		t.Fatalf("len = %d, want %d", len(s), len(keys))
	}
	for i, k := range keys {
		if s[i].Key != k {
			t.Errorf("scenario %d = %q, want %q", i, s[i].Key, k)
		}
	}
	if !s[3].Custom || s[0].Custom {
		t.Error("custom flag misplaced")
	}
	if s[0].RevMin != 538000 || s[0].RevMax != 702000 {
		t.Errorf("phuket range = %d–%d", s[0].RevMin, s[0].RevMax)
	}
}
