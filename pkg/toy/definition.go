package toy

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/toybox/pkg/rrf"
	"gitlab.com/tinyland/lab/toybox/pkg/theme"
)

// Definition is the on-disk description of one toy instance. The same
// struct decodes from TOML and YAML.
type Definition struct {
	Kind        string            `toml:"kind" yaml:"kind"`
	Title       string            `toml:"title" yaml:"title"`
	Description string            `toml:"description" yaml:"description"`
	K           int               `toml:"k" yaml:"k"`
	Lists       []ListDef         `toml:"lists" yaml:"lists"`
	Colors      map[string]string `toml:"colors" yaml:"colors"`
}

// ListDef is one ranked input list.
type ListDef struct {
	Name  string   `toml:"name" yaml:"name"`
	Emoji string   `toml:"emoji" yaml:"emoji"`
	Color string   `toml:"color" yaml:"color"`
	Items []string `toml:"items" yaml:"items"`
}

// Extensions lists the file extensions Discover considers.
var Extensions = []string{".toml", ".yaml", ".yml"}

// IsDefinitionFile reports whether name has a definition extension.
func IsDefinitionFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// NameOf strips the directory and extension from a definition file name.
func NameOf(file string) string {
	base := path.Base(file)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Decode parses data according to the extension of file and validates
// the result.
func Decode(file string, data []byte) (Definition, error) {
	var def Definition

	switch strings.ToLower(path.Ext(file)) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&def)
		if err != nil {
			return Definition{}, fmt.Errorf("toy: decode %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Definition{}, fmt.Errorf("toy: decode %s: unknown key %q", file, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return Definition{}, fmt.Errorf("toy: decode %s: %w", file, err)
		}
	default:
		return Definition{}, fmt.Errorf("toy: %s: unsupported extension", file)
	}

	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("toy: %s: %w", file, err)
	}
	return def, nil
}

// Validate checks the fields every kind relies on.
func (d Definition) Validate() error {
	if d.Kind == "" {
		return fmt.Errorf("missing required field %q", "kind")
	}
	if d.K < 0 {
		return fmt.Errorf("k must not be negative, got %d", d.K)
	}
	for i, l := range d.Lists {
		if l.Name == "" {
			return fmt.Errorf("lists[%d]: missing name", i)
		}
		if l.Color != "" && !theme.IsHex(l.Color) {
			return fmt.Errorf("lists[%d]: invalid color %q (expected #RRGGBB)", i, l.Color)
		}
	}
	for item, c := range d.Colors {
		if !theme.IsHex(c) {
			return fmt.Errorf("colors[%q]: invalid color %q (expected #RRGGBB)", item, c)
		}
	}
	return nil
}

// RankedLists converts the definition's lists for fusion. Lists without a
// color take one from the palette.
func (d Definition) RankedLists(t theme.Theme) []rrf.List {
	out := make([]rrf.List, len(d.Lists))
	for i, l := range d.Lists {
		c := l.Color
		if c == "" {
			c = t.SeriesColor(i)
		}
		out[i] = rrf.List{
			Name:  l.Name,
			Emoji: l.Emoji,
			Color: c,
			Items: append([]string(nil), l.Items...),
		}
	}
	return out
}

// SmoothingK returns K, or rrf.DefaultK when unset.
func (d Definition) SmoothingK() int {
	if d.K <= 0 {
		return rrf.DefaultK
	}
	return d.K
}

// ItemColor returns the configured color for item, or fallback.
func (d Definition) ItemColor(item, fallback string) string {
	if c, ok := d.Colors[item]; ok {
		return c
	}
	return fallback
}
