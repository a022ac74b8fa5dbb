package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string      `toml:"name"`
	Shell  thTOMLShell `toml:"shell"`
	Toy    thTOMLToy   `toml:"toy"`
	Series []string    `toml:"series"`
	Help   thTOMLHelp  `toml:"help"`
}

type thTOMLShell struct {
	NavBackground string `toml:"nav_background"`
	NavForeground string `toml:"nav_foreground"`
	NavActive     string `toml:"nav_active"`
	Background    string `toml:"background"`
	Foreground    string `toml:"foreground"`
}

type thTOMLToy struct {
	Panel       string `toml:"panel"`
	PanelBorder string `toml:"panel_border"`
	Dim         string `toml:"dim"`
	Faint       string `toml:"faint"`
	Accent      string `toml:"accent"`
	Highlight   string `toml:"highlight"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:          tt.Name,
		NavBackground: tt.Shell.NavBackground,
		NavForeground: tt.Shell.NavForeground,
		NavActive:     tt.Shell.NavActive,
		Background:    tt.Shell.Background,
		Foreground:    tt.Shell.Foreground,

		Panel:       tt.Toy.Panel,
		PanelBorder: tt.Toy.PanelBorder,
		Dim:         tt.Toy.Dim,
		Faint:       tt.Toy.Faint,
		Accent:      tt.Toy.Accent,
		Highlight:   tt.Toy.Highlight,

		Series: tt.Series,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// LoadFile reads a TOML theme from disk and registers it.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, err
	}
	Register(t)
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Shell: thTOMLShell{
			NavBackground: t.NavBackground,
			NavForeground: t.NavForeground,
			NavActive:     t.NavActive,
			Background:    t.Background,
			Foreground:    t.Foreground,
		},
		Toy: thTOMLToy{
			Panel:       t.Panel,
			PanelBorder: t.PanelBorder,
			Dim:         t.Dim,
			Faint:       t.Faint,
			Accent:      t.Accent,
			Highlight:   t.Highlight,
		},
		Series: t.Series,
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// IsHex reports whether s is a #RRGGBB color.
func IsHex(s string) bool {
	return thHexColorRegex.MatchString(s)
}

// thValidateTheme checks that all color fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct {
		field, value string
	}{
		{"nav_background", t.NavBackground},
		{"nav_foreground", t.NavForeground},
		{"nav_active", t.NavActive},
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"panel", t.Panel},
		{"panel_border", t.PanelBorder},
		{"dim", t.Dim},
		{"faint", t.Faint},
		{"accent", t.Accent},
		{"highlight", t.Highlight},
		{"help_key", t.HelpKey},
		{"help_desc", t.HelpDesc},
	}

	for _, f := range colorFields {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
		if !thHexColorRegex.MatchString(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.field)
		}
	}

	if len(t.Series) == 0 {
		return fmt.Errorf("theme: series must list at least one color")
	}
	for i, c := range t.Series {
		if !thHexColorRegex.MatchString(c) {
			return fmt.Errorf("theme: invalid hex color %q for series[%d]", c, i)
		}
	}

	return nil
}
