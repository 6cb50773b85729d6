package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Dallionking/stepview/internal/stepview"
)

// EnvPrefix prefixes environment overrides, e.g. STEPVIEW_TEXTSIZE=16.
const EnvPrefix = "STEPVIEW"

// Config is the on-disk description of a step view: its style and steps.
type Config struct {
	Orientation  string        `json:"orientation" yaml:"orientation" mapstructure:"orientation"`
	Preset       string        `json:"preset,omitempty" yaml:"preset,omitempty" mapstructure:"preset"`
	Width        int           `json:"width" yaml:"width" mapstructure:"width"`
	TextSize     int           `json:"textSize" yaml:"textSize" mapstructure:"textSize"`
	CircleRadius float64       `json:"circleRadius" yaml:"circleRadius" mapstructure:"circleRadius"`
	LineLength   float64       `json:"lineLength" yaml:"lineLength" mapstructure:"lineLength"`
	Reverse      bool          `json:"reverse" yaml:"reverse" mapstructure:"reverse"`
	DashedLine   bool          `json:"dashedLine" yaml:"dashedLine" mapstructure:"dashedLine"`
	Density      DensityConfig `json:"density" yaml:"density" mapstructure:"density"`
	Colors       ColorsConfig  `json:"colors" yaml:"colors" mapstructure:"colors"`
	Icons        IconsConfig   `json:"icons" yaml:"icons" mapstructure:"icons"`
	Steps        []StepConfig  `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// DensityConfig maps dp to terminal cells per axis.
type DensityConfig struct {
	Cols float64 `json:"cols" yaml:"cols" mapstructure:"cols"`
	Rows float64 `json:"rows" yaml:"rows" mapstructure:"rows"`
}

// ColorsConfig holds text and line colours as "#rrggbb" or ANSI numbers.
// Empty values fall back to the widget defaults.
type ColorsConfig struct {
	CompletedText    string `json:"completedText,omitempty" yaml:"completedText,omitempty" mapstructure:"completedText"`
	CurrentText      string `json:"currentText,omitempty" yaml:"currentText,omitempty" mapstructure:"currentText"`
	NotCompletedText string `json:"notCompletedText,omitempty" yaml:"notCompletedText,omitempty" mapstructure:"notCompletedText"`
	CompletedLine    string `json:"completedLine,omitempty" yaml:"completedLine,omitempty" mapstructure:"completedLine"`
	NotCompletedLine string `json:"notCompletedLine,omitempty" yaml:"notCompletedLine,omitempty" mapstructure:"notCompletedLine"`
}

// IconsConfig holds the icon for each state.
type IconsConfig struct {
	Completed    IconConfig `json:"completed" yaml:"completed" mapstructure:"completed"`
	Current      IconConfig `json:"current" yaml:"current" mapstructure:"current"`
	NotCompleted IconConfig `json:"notCompleted" yaml:"notCompleted" mapstructure:"notCompleted"`
}

// IconConfig is a glyph and its colour.
type IconConfig struct {
	Glyph string `json:"glyph,omitempty" yaml:"glyph,omitempty" mapstructure:"glyph"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`
}

// StepConfig is one step entry.
type StepConfig struct {
	Name  string         `json:"name" yaml:"name" mapstructure:"name"`
	State stepview.State `json:"state" yaml:"state" mapstructure:"state"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Orientation:  "horizontal",
		TextSize:     stepview.DefaultTextSize,
		CircleRadius: 0.28 * 40,
		LineLength:   0.85 * 40,
		Reverse:      true,
		DashedLine:   true,
		Density: DensityConfig{
			Cols: stepview.DefaultDensity.Cols,
			Rows: stepview.DefaultDensity.Rows,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("orientation", d.Orientation)
	v.SetDefault("preset", d.Preset)
	v.SetDefault("width", d.Width)
	v.SetDefault("textSize", d.TextSize)
	v.SetDefault("circleRadius", d.CircleRadius)
	v.SetDefault("lineLength", d.LineLength)
	v.SetDefault("reverse", d.Reverse)
	v.SetDefault("dashedLine", d.DashedLine)
	v.SetDefault("density.cols", d.Density.Cols)
	v.SetDefault("density.rows", d.Density.Rows)
}

// DecodeHook converts config strings into typed values, state names into
// stepview.State in particular.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Load reads the config file at path. With an empty path it searches the
// working directory and its parents for a stepview config file, and falls
// back to defaults when none exists. Environment variables prefixed with
// STEPVIEW_ override file values. It returns the file actually read, or "".
func Load(path string) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		found, err := DetectConfigFile()
		if err != nil && !errors.Is(err, ErrNoConfigFile) {
			return nil, "", err
		}
		path = found
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(DecodeHook())); err != nil {
		return nil, "", fmt.Errorf("decoding config: %w", err)
	}

	if cfg.Preset != "" {
		if err := ApplyPreset(&cfg, cfg.Preset); err != nil {
			return nil, "", err
		}
	}

	return &cfg, path, nil
}

// ApplyPreset fills the unset colours and icons of cfg from the named
// preset. Explicit values win.
func ApplyPreset(cfg *Config, name string) error {
	preset, err := Preset(name)
	if err != nil {
		return err
	}
	if err := mergo.Merge(cfg, preset); err != nil {
		return fmt.Errorf("applying preset %q: %w", name, err)
	}
	cfg.Preset = name
	return nil
}

// Override copies every non-zero field of src over dst.
func Override(dst *Config, src Config) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging config overrides: %w", err)
	}
	return nil
}

// Save writes cfg to path as YAML or JSON, chosen by the file extension.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg, filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Marshal encodes cfg. ext selects the format (".json" or YAML otherwise).
func Marshal(cfg *Config, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".json") {
		return marshalJSON(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

func marshalJSON(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return append(data, '\n'), nil
}
