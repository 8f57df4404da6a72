package deckgen

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// maxFilenameTopicLen bounds the topic fragment embedded in display filenames.
const maxFilenameTopicLen = 30

// artifactFilename builds the display filename for a new artifact:
// a sanitized topic fragment, a creation timestamp, and a short random
// suffix so two decks on the same topic never collide.
//
//	ai_in_healthcare_20260827_141503_a1b2c3d4.md
//
// The filename is presentation metadata only; artifacts are always addressed
// by their store identifier.
func artifactFilename(topic, extension string) string {
	fragment := sanitizeTopic(topic)
	timestamp := time.Now().UTC().Format("20060102_150405")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("%s_%s_%s%s", fragment, timestamp, suffix, extension)
}

// sanitizeTopic reduces a topic to a filesystem-safe lowercase fragment.
// Characters other than letters, digits, spaces, hyphens, and underscores are
// dropped; runs of spaces collapse to single underscores.
func sanitizeTopic(topic string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(topic) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	fragment := strings.Join(strings.Fields(b.String()), "_")
	if len(fragment) > maxFilenameTopicLen {
		fragment = fragment[:maxFilenameTopicLen]
	}
	fragment = strings.Trim(fragment, "_-")

	if fragment == "" {
		fragment = "presentation"
	}
	return fragment
}
