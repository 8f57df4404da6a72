package orchestrator

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlMarkers are substrings whose presence flags provider output as HTML.
// Models occasionally ignore the JSON contract and answer with marked-up
// prose, typically when a topic resembles web content they were trained on.
var htmlMarkers = []string{
	"<html", "<body", "<div", "<p>", "<p ", "<ul>", "<ol>", "<li>",
	"<h1", "<h2", "<h3", "<table", "<br", "<span", "<strong>", "<em>",
}

// sanitizeContent normalizes raw provider output before parsing. HTML is
// converted to markdown so that downstream parsing sees plain text; anything
// else passes through unchanged. Conversion failures keep the original
// content, leaving the parser's own repair path as the safety net.
func sanitizeContent(content string) string {
	if !looksLikeHTML(content) {
		return content
	}

	converted, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(converted)
}

// looksLikeHTML reports whether content appears to be HTML markup rather than
// the JSON object providers are asked for. JSON payloads are never converted,
// even when a string field happens to contain an angle bracket.
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range htmlMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
