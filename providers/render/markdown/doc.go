// Package markdown renders slide plans as portable markdown documents.
//
// Each slide becomes a section separated by horizontal rules, with headings,
// bullet lists, two-column subsections, and image placeholders mapped from the
// slide's resolved layout. The plan's style sheet is embedded as a leading
// HTML comment so converters that understand it can apply the theme while
// plain viewers ignore it.
package markdown
