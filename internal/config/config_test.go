package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	in := Default().Calculator.CustomInputs()
	if in.Beds != 60 || in.ADR != 460 || in.OccupancyPct != 70 || *in.PeriodDays != 30 {
		t.Errorf("CustomInputs = %+v", in)
	}
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cities.yaml", "cities: []\n")
	path := writeFile(t, dir, "config.yaml", `
cities_file: cities.yaml
server:
  port: "9090"
calculator:
  rooms: 12
  custom_bounds:
    max_beds: 300
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", c.Server.Port)
	}
	if c.Server.Env != "development" {
		t.Errorf("Env = %q, want default development", c.Server.Env)
	}
	if c.Calculator.Rooms != 12 || c.Calculator.BedsPerRoom != 6 {
		t.Errorf("rooms/beds = %d/%d, want 12/6", c.Calculator.Rooms, c.Calculator.BedsPerRoom)
	}
	b := c.Calculator.CustomBounds.Bounds()
	if b.MaxBeds != 300 || b.MinBeds != 10 || b.ADR.Max != 1200 {
		t.Errorf("bounds = %+v", b)
	}
	if c.CitiesFile != filepath.Join(dir, "cities.yaml") {
		t.Errorf("CitiesFile = %q, want resolved against config dir", c.CitiesFile)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[server]
port = "7070"
cors_origins = ["https://example.com"]

[calculator]
custom_adr = 500.0
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != "7070" {
		t.Errorf("Port = %q, want 7070", c.Server.Port)
	}
	if len(c.Server.CORSOrigins) != 1 || c.Server.CORSOrigins[0] != "https://example.com" {
		t.Errorf("CORSOrigins = %v", c.Server.CORSOrigins)
	}
	if c.Calculator.CustomADR != 500 {
		t.Errorf("CustomADR = %v, want 500", c.Calculator.CustomADR)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"occupancy over 100": "calculator:\n  custom_occupancy_pct: 140\n",
		"inverted bounds":    "calculator:\n  custom_bounds:\n    min_adr: 2000\n",
		"bad yaml":           "calculator: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", body)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("API_PORT", "1234")
	t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("CITIES_FILE", "/tmp/cities.json")

	c, err := LoadOrDefault("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.Port != "1234" {
		t.Errorf("Port = %q", c.Server.Port)
	}
	if len(c.Server.CORSOrigins) != 2 || c.Server.CORSOrigins[1] != "https://b.test" {
		t.Errorf("CORSOrigins = %v", c.Server.CORSOrigins)
	}
	if c.CitiesFile != "/tmp/cities.json" {
		t.Errorf("CitiesFile = %q", c.CitiesFile)
	}
}

func TestMergeCalculatorKeepsZeroOverrides(t *testing.T) {
	base := Default().Calculator
	got := MergeCalculator(base, CalculatorConfig{})
	if got != base {
		t.Errorf("empty override changed config: %+v", got)
	}
}
