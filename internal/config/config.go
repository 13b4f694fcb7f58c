package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hostel-franchise/internal/model"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML, or TOML for *.toml files).
type Config struct {
	// Optional: override the embedded city table with a YAML/JSON file.
	CitiesFile string           `yaml:"cities_file" toml:"cities_file"`
	Server     ServerConfig     `yaml:"server" toml:"server"`
	Calculator CalculatorConfig `yaml:"calculator" toml:"calculator"`
}

type ServerConfig struct {
	Port        string   `yaml:"port" toml:"port"`
	Env         string   `yaml:"env" toml:"env"`
	CORSOrigins []string `yaml:"cors_origins" toml:"cors_origins"`
	StaticDir   string   `yaml:"static_dir" toml:"static_dir"`
}

// CalculatorConfig seeds the calculator forms.
type CalculatorConfig struct {
	Rooms       int `yaml:"rooms" toml:"rooms"`
	BedsPerRoom int `yaml:"beds_per_room" toml:"beds_per_room"`
	PeriodDays  int `yaml:"period_days" toml:"period_days"`

	CustomBeds         int     `yaml:"custom_beds" toml:"custom_beds"`
	CustomADR          float64 `yaml:"custom_adr" toml:"custom_adr"`
	CustomOccupancyPct float64 `yaml:"custom_occupancy_pct" toml:"custom_occupancy_pct"`

	CustomBounds BoundsConfig `yaml:"custom_bounds" toml:"custom_bounds"`
}

type BoundsConfig struct {
	MinBeds         int     `yaml:"min_beds" toml:"min_beds"`
	MaxBeds         int     `yaml:"max_beds" toml:"max_beds"`
	MinADR          float64 `yaml:"min_adr" toml:"min_adr"`
	MaxADR          float64 `yaml:"max_adr" toml:"max_adr"`
	MinOccupancyPct float64 `yaml:"min_occupancy_pct" toml:"min_occupancy_pct"`
	MaxOccupancyPct float64 `yaml:"max_occupancy_pct" toml:"max_occupancy_pct"`
}

// Default mirrors the values the landing page ships with.
func Default() *Config {
	b := model.CustomBounds
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			Env:         "development",
			CORSOrigins: []string{"*"},
			StaticDir:   "./web/dist",
		},
		Calculator: CalculatorConfig{
			Rooms:              20,
			BedsPerRoom:        6,
			PeriodDays:         model.DefaultPeriodDays,
			CustomBeds:         60,
			CustomADR:          460,
			CustomOccupancyPct: 70,
			CustomBounds: BoundsConfig{
				MinBeds:         b.MinBeds,
				MaxBeds:         b.MaxBeds,
				MinADR:          b.ADR.Min,
				MaxADR:          b.ADR.Max,
				MinOccupancyPct: b.OccupancyPct.Min,
				MaxOccupancyPct: b.OccupancyPct.Max,
			},
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads path and overlays it onto Default(), without validating.
// Relative cities_file paths are resolved against the config file's directory
// when that file exists.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fileCfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(raw), &fileCfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if fileCfg.CitiesFile != "" && !filepath.IsAbs(fileCfg.CitiesFile) {
		cand := filepath.Join(filepath.Dir(path), fileCfg.CitiesFile)
		if _, err := os.Stat(cand); err == nil {
			fileCfg.CitiesFile = cand
		}
	}

	c := Merge(*Default(), fileCfg)
	return &c, nil
}

// LoadOrDefault loads path when set, else returns Default(). Env overrides
// are applied in both cases.
func LoadOrDefault(path string) (*Config, error) {
	c := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	c.ApplyEnv()
	return c, c.Validate()
}

// ApplyEnv lets API_PORT, API_ENV, CORS_ORIGINS and CITIES_FILE win over the file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("CITIES_FILE"); v != "" {
		c.CitiesFile = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	calc := c.Calculator
	if calc.Rooms < 1 || calc.BedsPerRoom < 1 {
		return errors.New("calculator.rooms and calculator.beds_per_room must be >= 1")
	}
	// Validate the custom defaults by constructing RateAssumptions.
	a := model.RateAssumptions{
		InventoryUnits:    calc.CustomBeds,
		AverageDailyRate:  calc.CustomADR,
		OccupancyFraction: calc.CustomOccupancyPct / 100,
		PeriodDays:        calc.PeriodDays,
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("calculator config invalid: %w", err)
	}
	b := calc.CustomBounds
	if b.MinBeds > b.MaxBeds || b.MinADR > b.MaxADR || b.MinOccupancyPct > b.MaxOccupancyPct {
		return errors.New("calculator.custom_bounds: min must not exceed max")
	}
	if b.MinOccupancyPct < 0 || b.MaxOccupancyPct > 100 {
		return errors.New("calculator.custom_bounds: occupancy must be within 0..100")
	}
	return nil
}

// Bounds converts the custom-card bounds into the model shape.
func (b BoundsConfig) Bounds() model.Bounds {
	return model.Bounds{
		MinBeds:      b.MinBeds,
		MaxBeds:      b.MaxBeds,
		ADR:          model.Range{Min: b.MinADR, Max: b.MaxADR},
		OccupancyPct: model.Range{Min: b.MinOccupancyPct, Max: b.MaxOccupancyPct},
	}
}

// CustomInputs returns the custom card's starting form values.
func (c CalculatorConfig) CustomInputs() model.CalculatorInputs {
	days := c.PeriodDays
	return model.CalculatorInputs{
		Beds:         c.CustomBeds,
		ADR:          c.CustomADR,
		OccupancyPct: c.CustomOccupancyPct,
		PeriodDays:   &days,
	}
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override Config) Config {
	out := base
	if override.CitiesFile != "" {
		out.CitiesFile = override.CitiesFile
	}
	out.Server = MergeServer(base.Server, override.Server)
	out.Calculator = MergeCalculator(base.Calculator, override.Calculator)
	return out
}

func MergeServer(base, override ServerConfig) ServerConfig {
	out := base
	if override.Port != "" {
		out.Port = override.Port
	}
	if override.Env != "" {
		out.Env = override.Env
	}
	if len(override.CORSOrigins) > 0 {
		out.CORSOrigins = override.CORSOrigins
	}
	if override.StaticDir != "" {
		out.StaticDir = override.StaticDir
	}
	return out
}

func MergeCalculator(base, override CalculatorConfig) CalculatorConfig {
	out := base
	if override.Rooms != 0 {
		out.Rooms = override.Rooms
	}
	if override.BedsPerRoom != 0 {
		out.BedsPerRoom = override.BedsPerRoom
	}
	if override.PeriodDays != 0 {
		out.PeriodDays = override.PeriodDays
	}
	if override.CustomBeds != 0 {
		out.CustomBeds = override.CustomBeds
	}
	if override.CustomADR != 0 {
		out.CustomADR = override.CustomADR
	}
	if override.CustomOccupancyPct != 0 {
		out.CustomOccupancyPct = override.CustomOccupancyPct
	}
	// Note: a bound of 0 is meaningful in theory, but our configs never use one.
	ob := override.CustomBounds
	if ob.MinBeds != 0 {
		out.CustomBounds.MinBeds = ob.MinBeds
	}
	if ob.MaxBeds != 0 {
		out.CustomBounds.MaxBeds = ob.MaxBeds
	}
	if ob.MinADR != 0 {
		out.CustomBounds.MinADR = ob.MinADR
	}
	if ob.MaxADR != 0 {
		out.CustomBounds.MaxADR = ob.MaxADR
	}
	if ob.MinOccupancyPct != 0 {
		out.CustomBounds.MinOccupancyPct = ob.MinOccupancyPct
	}
	if ob.MaxOccupancyPct != 0 {
		out.CustomBounds.MaxOccupancyPct = ob.MaxOccupancyPct
	}
	return out
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
