package deck

// Slide is one fully resolved slide specification: concrete layout, final
// text, and nothing left for the renderer to decide.
type Slide struct {
	Layout       Layout   `json:"layout"`
	Title        string   `json:"title"`
	Body         string   `json:"content,omitempty"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	LeftColumn   string   `json:"left_column,omitempty"`
	RightColumn  string   `json:"right_column,omitempty"`
	ImagePrompt  string   `json:"image_placeholder,omitempty"`
}

// SlidePlan is the renderer-ready representation of a deck: an ordered slide
// sequence plus the style sheet every slide resolves against. It is a pure
// value, rebuildable deterministically from the same ContentSet and style
// inputs.
type SlidePlan struct {
	Topic  string     `json:"topic"`
	Theme  Theme      `json:"theme"`
	Style  StyleSheet `json:"style"`
	Slides []Slide    `json:"slides"`
}
