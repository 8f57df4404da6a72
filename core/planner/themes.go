package planner

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leofalp/deckgen/core/deck"
)

// Catalog maps theme names to fully specified style sheets. The built-in
// catalog covers the four standard themes; deployments can layer custom
// themes on top from a YAML definition.
type Catalog struct {
	styles map[deck.Theme]deck.StyleSheet
}

// DefaultCatalog returns a catalog holding the built-in themes.
func DefaultCatalog() *Catalog {
	return &Catalog{styles: map[deck.Theme]deck.StyleSheet{
		deck.ThemeModern: {
			Colors: deck.ColorScheme{Primary: "#2E86AB", Secondary: "#A23B72", Background: "#FFFFFF", Text: "#333333"},
			Fonts:  defaultFonts(),
		},
		deck.ThemeCorporate: {
			Colors: deck.ColorScheme{Primary: "#003366", Secondary: "#6699CC", Background: "#FFFFFF", Text: "#000000"},
			Fonts:  defaultFonts(),
		},
		deck.ThemeCreative: {
			Colors: deck.ColorScheme{Primary: "#FF69B4", Secondary: "#8A2BE2", Background: "#FFFFFF", Text: "#333333"},
			Fonts:  defaultFonts(),
		},
		deck.ThemeMinimal: {
			Colors: deck.ColorScheme{Primary: "#808080", Secondary: "#C0C0C0", Background: "#FFFFFF", Text: "#000000"},
			Fonts:  defaultFonts(),
		},
	}}
}

func defaultFonts() deck.FontSettings {
	return deck.FontSettings{TitleFont: "Arial", BodyFont: "Calibri", TitleSize: 44, BodySize: 18}
}

// Style resolves a theme to its style sheet.
func (c *Catalog) Style(theme deck.Theme) (deck.StyleSheet, bool) {
	style, ok := c.styles[theme]
	return style, ok
}

// Known reports whether the catalog can resolve the theme.
func (c *Catalog) Known(theme deck.Theme) bool {
	_, ok := c.styles[theme]
	return ok
}

// Themes returns the catalog's theme names in unspecified order.
func (c *Catalog) Themes() []deck.Theme {
	names := make([]deck.Theme, 0, len(c.styles))
	for name := range c.styles {
		names = append(names, name)
	}
	return names
}

// LoadYAML merges custom theme definitions into the catalog, replacing any
// existing theme of the same name wholesale. Every definition must be
// complete: style layering never merges individual attributes, so a partial
// theme would leave slides with unspecified styling.
//
// Expected document shape:
//
//	boardroom:
//	  colors:
//	    primary_color: "#1A1A2E"
//	    secondary_color: "#E94560"
//	    background_color: "#FFFFFF"
//	    text_color: "#16213E"
//	  fonts:
//	    title_font: Georgia
//	    body_font: Verdana
//	    title_size: 40
//	    body_size: 16
func (c *Catalog) LoadYAML(data []byte) error {
	var parsed map[deck.Theme]deck.StyleSheet
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("parsing theme catalog: %w", err)
	}

	for name, style := range parsed {
		if name == "" {
			return fmt.Errorf("theme catalog contains an unnamed theme")
		}
		if !style.Colors.Complete() {
			return fmt.Errorf("theme %q: color scheme must specify all four colors", name)
		}
		if !style.Fonts.Complete() {
			return fmt.Errorf("theme %q: font settings must specify all font attributes", name)
		}
		c.styles[name] = style
	}
	return nil
}
