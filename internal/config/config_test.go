package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepview/internal/stepview"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", "orientation: vertical\n")

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	want := Default()
	want.Orientation = "vertical"
	assert.Equal(t, &want, cfg)
}

func TestLoadDecodesStepStates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", `
steps:
  - name: Order
    state: completed
  - name: Pay
    state: current
  - name: Ship
`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []StepConfig{
		{Name: "Order", State: stepview.Completed},
		{Name: "Pay", State: stepview.Current},
		{Name: "Ship", State: stepview.NotCompleted},
	}, cfg.Steps)
}

func TestLoadRejectsUnknownState(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", "steps:\n  - name: A\n    state: halfway\n")

	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.json", `{"textSize": 18, "reverse": false}`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 18, cfg.TextSize)
	assert.False(t, cfg.Reverse)
	assert.True(t, cfg.DashedLine)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", "textSize: 12\n")
	t.Setenv("STEPVIEW_TEXTSIZE", "20")

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.TextSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPresetFillsUnsetFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", `
preset: custom
colors:
  completedLine: "#00ff00"
`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", cfg.Colors.CompletedLine, "explicit value wins")
	assert.Equal(t, "#eaac5c", cfg.Colors.NotCompletedLine, "preset fills the rest")
	assert.Equal(t, "✔", cfg.Icons.Completed.Glyph)
}

func TestLoadUnknownPreset(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stepview.yaml", "preset: neon\n")

	_, _, err := Load(path)
	assert.ErrorContains(t, err, "neon")
}

func TestOverride(t *testing.T) {
	cfg := Default()
	require.NoError(t, Override(&cfg, Config{
		Orientation: "vertical",
		Width:       50,
		Steps:       []StepConfig{{Name: "X"}},
	}))

	assert.Equal(t, "vertical", cfg.Orientation)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, stepview.DefaultTextSize, cfg.TextSize, "zero fields leave dst alone")
	assert.Len(t, cfg.Steps, 1)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Preset = "gotham"
			cfg.Steps = []StepConfig{{Name: "A", State: stepview.Completed}, {Name: "B"}}
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, Save(path, &cfg))
			loaded, _, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg.Steps, loaded.Steps)
			assert.Equal(t, "gotham", loaded.Preset)
		})
	}
}

func TestMarshalWritesStateNames(t *testing.T) {
	cfg := Default()
	cfg.Steps = []StepConfig{{Name: "A", State: stepview.Current}}

	data, err := Marshal(&cfg, ".yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "state: current")
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	want := writeFile(t, root, "stepview.yml", "width: 10\n")

	got, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigFilePrefersNearest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, root, "stepview.yaml", "")
	want := writeFile(t, nested, "stepview.json", "{}")

	got, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseStepSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    StepConfig
		wantErr bool
	}{
		{name: "name only", in: "Order", want: StepConfig{Name: "Order"}},
		{name: "with state", in: "Pay:current", want: StepConfig{Name: "Pay", State: stepview.Current}},
		{name: "alias", in: "Ship:done", want: StepConfig{Name: "Ship", State: stepview.Completed}},
		{name: "padded", in: " Ship :completed", want: StepConfig{Name: "Ship", State: stepview.Completed}},
		{name: "empty name", in: ":current", wantErr: true},
		{name: "bad state", in: "A:maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStepSpec(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStepSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "orientation", mutate: func(c *Config) { c.Orientation = "diagonal" }, fields: []string{"orientation"}},
		{name: "text size", mutate: func(c *Config) { c.TextSize = 0 }, fields: []string{"textSize"}},
		{name: "radius", mutate: func(c *Config) { c.CircleRadius = -1 }, fields: []string{"circleRadius"}},
		{name: "density", mutate: func(c *Config) { c.Density.Rows = 0 }, fields: []string{"density"}},
		{name: "colour", mutate: func(c *Config) { c.Colors.CurrentText = "blue" }, fields: []string{"colors.currentText"}},
		{name: "ansi colour ok", mutate: func(c *Config) { c.Colors.CurrentText = "212" }},
		{name: "wide glyph", mutate: func(c *Config) { c.Icons.Current.Glyph = "ab" }, fields: []string{"icons.current.glyph"}},
		{name: "empty step name", mutate: func(c *Config) { c.Steps = []StepConfig{{Name: "A"}, {Name: " "}} }, fields: []string{"steps[1].name"}},
		{name: "preset", mutate: func(c *Config) { c.Preset = "neon" }, fields: []string{"preset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			var fields []string
			for _, e := range Validate(&cfg) {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.fields, fields)
		})
	}
}

func TestValidateReportsInFieldOrder(t *testing.T) {
	cfg := Default()
	cfg.Colors.CompletedText = "red"
	cfg.Colors.NotCompletedLine = "nope"
	cfg.Icons.Completed.Color = "999"
	cfg.Icons.Current.Glyph = "ab"
	cfg.Icons.NotCompleted.Glyph = "xy"

	want := []string{
		"colors.completedText",
		"colors.notCompletedLine",
		"icons.completed.color",
		"icons.current.glyph",
		"icons.notCompleted.glyph",
	}
	for range 20 {
		var fields []string
		for _, e := range Validate(&cfg) {
			fields = append(fields, e.Field)
		}
		require.Equal(t, want, fields)
	}
}

func TestBuild(t *testing.T) {
	cfg := Default()
	cfg.Orientation = "vertical"
	cfg.Reverse = false
	cfg.DashedLine = false
	cfg.Colors.CompletedLine = "#ea655c"
	cfg.Icons.Current = IconConfig{Glyph: "★"}
	cfg.Steps = []StepConfig{{Name: "A", State: stepview.Completed}, {Name: "B", State: stepview.Current}}

	v, err := Build(&cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "vertical", v.Orientation())
	assert.False(t, v.Reverse())
	assert.False(t, v.NotCompletedLineDashed())
	assert.Equal(t, lipgloss.Color("#ea655c"), v.CompletedLineColor())
	assert.Equal(t, "★", v.CurrentIcon().Glyph)
	assert.Equal(t, stepview.DefaultCurrentIcon.Color, v.CurrentIcon().Color, "unset colour keeps the default")
	assert.Equal(t, cfg.StepList(), v.Steps())
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.TextSize = -2

	_, err := Build(&cfg, nil)
	assert.ErrorContains(t, err, "textSize")
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"custom", "default", "gotham"}, ListPresets())
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	cfg.Icons.Current.Glyph = "★"

	require.NoError(t, ApplyPreset(&cfg, "gotham"))
	assert.Equal(t, "gotham", cfg.Preset)
	assert.Equal(t, "★", cfg.Icons.Current.Glyph)
	assert.Equal(t, "#4fc1ff", cfg.Icons.Current.Color)
	assert.Equal(t, "#22c55e", cfg.Colors.CompletedLine)

	assert.Error(t, ApplyPreset(&cfg, "neon"))
}
