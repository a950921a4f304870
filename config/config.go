package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration: asset and lookup table locations, output
// naming and a few UI knobs. Fields may be loaded from a JSON file and then
// overridden by FIREMAP_* environment variables.
type Config struct {
	Debug bool `json:"debug"`

	// Startup inputs
	BlankPath          string  `json:"blank_path"`
	FontPath           string  `json:"font_path"`
	FontSize           float64 `json:"font_size"`
	StationRegionsPath string  `json:"station_regions_path"`
	RegionCoordsPath   string  `json:"region_coords_path"`

	// Fatal startup diagnostics are appended here.
	LogPath string `json:"log_path"`

	// Output
	OutputDir string `json:"output_dir"`
	Title     string `json:"title"`

	// UI
	WindowTitle   string `json:"window_title"`
	PreviewHeight int    `json:"preview_height"`
	UIFontSize    int    `json:"ui_font_size"`

	// Optional Prometheus endpoint, e.g. "127.0.0.1:9464". Empty disables it.
	MetricsAddr string `json:"metrics_addr"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:              false,
		BlankPath:          "blank.png",
		FontPath:           "times.ttf",
		FontSize:           42,
		StationRegionsPath: "station_regions.txt",
		RegionCoordsPath:   "region_coords.txt",
		LogPath:            "log.txt",
		OutputDir:          ".",
		Title:              "Карта пожарной опасности",
		WindowTitle:        "Генератор карты пожароопасности",
		PreviewHeight:      600,
		UIFontSize:         16,
		MetricsAddr:        "",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.PreviewHeight < 50 {
		c.PreviewHeight = d.PreviewHeight
	}
	if c.UIFontSize <= 0 {
		c.UIFontSize = d.UIFontSize
	}
	if strings.TrimSpace(c.BlankPath) == "" {
		c.BlankPath = d.BlankPath
	}
	if strings.TrimSpace(c.LogPath) == "" {
		c.LogPath = d.LogPath
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = d.OutputDir
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = d.Title
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides fields from FIREMAP_* environment variables.
func (c *Config) ApplyEnv() {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	str("FIREMAP_BLANK_PATH", &c.BlankPath)
	str("FIREMAP_FONT_PATH", &c.FontPath)
	str("FIREMAP_STATION_REGIONS_PATH", &c.StationRegionsPath)
	str("FIREMAP_REGION_COORDS_PATH", &c.RegionCoordsPath)
	str("FIREMAP_LOG_PATH", &c.LogPath)
	str("FIREMAP_OUTPUT_DIR", &c.OutputDir)
	str("FIREMAP_TITLE", &c.Title)
	str("FIREMAP_METRICS_ADDR", &c.MetricsAddr)
	if v, ok := os.LookupEnv("FIREMAP_DEBUG"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Debug = b
		}
	}
	if v, ok := os.LookupEnv("FIREMAP_FONT_SIZE"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			c.FontSize = f
		}
	}
	if v, ok := os.LookupEnv("FIREMAP_PREVIEW_HEIGHT"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.PreviewHeight = n
		}
	}
	_ = c.Validate()
}
