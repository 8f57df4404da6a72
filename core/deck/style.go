package deck

// Layout identifies the visual arrangement of a single slide.
type Layout string

const (
	LayoutTitle            Layout = "title"
	LayoutBulletPoints     Layout = "bullet_points"
	LayoutTwoColumn        Layout = "two_column"
	LayoutContentWithImage Layout = "content_with_image"
)

// Layouts lists every supported layout in a stable order.
func Layouts() []Layout {
	return []Layout{LayoutTitle, LayoutBulletPoints, LayoutTwoColumn, LayoutContentWithImage}
}

// Valid reports whether l names a supported layout.
func (l Layout) Valid() bool {
	switch l {
	case LayoutTitle, LayoutBulletPoints, LayoutTwoColumn, LayoutContentWithImage:
		return true
	}
	return false
}

// Theme identifies one of the built-in visual themes.
type Theme string

const (
	ThemeModern    Theme = "modern"
	ThemeCorporate Theme = "corporate"
	ThemeCreative  Theme = "creative"
	ThemeMinimal   Theme = "minimal"
)

// Themes lists every built-in theme in a stable order.
func Themes() []Theme {
	return []Theme{ThemeModern, ThemeCorporate, ThemeCreative, ThemeMinimal}
}

// Valid reports whether t names a built-in theme. Custom themes registered
// through a planner catalog are validated by the catalog instead.
func (t Theme) Valid() bool {
	switch t {
	case ThemeModern, ThemeCorporate, ThemeCreative, ThemeMinimal:
		return true
	}
	return false
}

// ColorScheme holds the four colours a slide plan resolves against,
// as "#RRGGBB" hex strings.
type ColorScheme struct {
	Primary    string `json:"primary_color" yaml:"primary_color"`
	Secondary  string `json:"secondary_color" yaml:"secondary_color"`
	Background string `json:"background_color" yaml:"background_color"`
	Text       string `json:"text_color" yaml:"text_color"`
}

// Complete reports whether every colour in the scheme is set. Style layering
// replaces whole schemes, never individual fields, so an override must be
// complete to be usable.
func (c ColorScheme) Complete() bool {
	return c.Primary != "" && c.Secondary != "" && c.Background != "" && c.Text != ""
}

// FontSettings holds the typeface and size choices for titles and body text.
type FontSettings struct {
	TitleFont string `json:"title_font" yaml:"title_font"`
	BodyFont  string `json:"body_font" yaml:"body_font"`
	TitleSize int    `json:"title_size" yaml:"title_size"`
	BodySize  int    `json:"body_size" yaml:"body_size"`
}

// Complete reports whether every font attribute is set.
func (f FontSettings) Complete() bool {
	return f.TitleFont != "" && f.BodyFont != "" && f.TitleSize > 0 && f.BodySize > 0
}

// StyleSheet is a fully resolved set of styling attributes: theme defaults
// with any request overrides already layered on top.
type StyleSheet struct {
	Colors ColorScheme  `json:"colors" yaml:"colors"`
	Fonts  FontSettings `json:"fonts" yaml:"fonts"`
}
