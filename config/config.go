package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type File struct {
	Version int     `yaml:"version"`
	Chart   Chart   `yaml:"chart"`
	Tooltip Tooltip `yaml:"tooltip"`
	Source  Source  `yaml:"source"`
}

type Chart struct {
	X           string   `yaml:"x"`
	Y           string   `yaml:"y"`
	Category    string   `yaml:"category"`
	TimeLayouts []string `yaml:"time_layouts,omitempty"`
	Categories  []string `yaml:"categories,omitempty"`
	Colors      []string `yaml:"colors,omitempty"`
	Height      int      `yaml:"height"`
	BlurDelayMS int      `yaml:"blur_delay_ms"`
}

type Tooltip struct {
	NullAlias string `yaml:"null_alias,omitempty"`
	BarCells  int    `yaml:"bar_cells"`
}

type Source struct {
	Query string `yaml:"query,omitempty"`
}

var defaultColors = []string{"#5b8ff9", "#5ad8a6", "#f6bd16", "#e8684a", "#6dc8ec", "#9270ca", "#ff9d4d"}

// Default is the configuration used when no file is given.
func Default() File {
	return File{
		Version: 1,
		Chart: Chart{
			X:           "date",
			Y:           "value",
			Category:    "category",
			Colors:      append([]string(nil), defaultColors...),
			Height:      12,
			BlurDelayMS: 100,
		},
		Tooltip: Tooltip{
			NullAlias: "No value",
			BarCells:  20,
		},
	}
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML over the defaults, so omitted keys keep their default value.
func Parse(data []byte, source string) (File, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}

	dims := map[string]string{
		"chart.x":        cfg.Chart.X,
		"chart.y":        cfg.Chart.Y,
		"chart.category": cfg.Chart.Category,
	}
	seen := map[string]string{}
	for _, key := range []string{"chart.x", "chart.y", "chart.category"} {
		v := strings.TrimSpace(dims[key])
		if v == "" {
			errs = append(errs, key+" is required")
			continue
		}
		if other, ok := seen[v]; ok {
			errs = append(errs, fmt.Sprintf("%s duplicates %s (%q)", key, other, v))
		}
		seen[v] = key
	}

	if cfg.Chart.Height < 3 {
		errs = append(errs, "chart.height must be >= 3")
	}
	if cfg.Chart.BlurDelayMS < 0 {
		errs = append(errs, "chart.blur_delay_ms must be >= 0")
	}
	if len(cfg.Chart.Colors) == 0 {
		errs = append(errs, "chart.colors must contain at least one color")
	}
	cats := map[string]struct{}{}
	for i, c := range cfg.Chart.Categories {
		if _, ok := cats[c]; ok {
			errs = append(errs, fmt.Sprintf("chart.categories[%d] duplicate %q", i, c))
		}
		cats[c] = struct{}{}
	}
	for i, l := range cfg.Chart.TimeLayouts {
		if strings.TrimSpace(l) == "" {
			errs = append(errs, fmt.Sprintf("chart.time_layouts[%d] must not be empty", i))
		}
	}
	if cfg.Tooltip.BarCells < 1 {
		errs = append(errs, "tooltip.bar_cells must be >= 1")
	}
	return errs
}

func (c Chart) BlurDelay() time.Duration {
	return time.Duration(c.BlurDelayMS) * time.Millisecond
}
