// Package title derives a short episode title from greeting text.
package title

import (
	"regexp"
	"strings"
)

// FallbackMaxLen is the longest first line the fallback will accept as a title.
const FallbackMaxLen = 50

// Ordered patterns, first match wins. Each has exactly one capture group.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^\*\*(.+?)\*\*`),               // **Bold Title**
	regexp.MustCompile(`^#[ \t]+([^\n]+)`),             // # Heading
	regexp.MustCompile(`^"([^"\n]+)"`),                 // "Quoted Title"
	regexp.MustCompile(`(?i)^episode[ \t]+\d+:(.*)`),   // Episode 3: The Reveal
}

var markerChars = strings.NewReplacer("*", "", "#", "", `"`, "")

// Extract returns the title embedded in text, or false when no title can
// be derived. Matching runs against the trimmed text; the fallback takes
// the first line when it is short enough, with marker characters removed.
func Extract(text string) (string, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", false
	}

	for _, re := range patterns {
		if m := re.FindStringSubmatch(t); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title, true
			}
			return "", false
		}
	}

	line := t
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		line = t[:i]
	}
	if len(line) > FallbackMaxLen {
		return "", false
	}
	title := strings.TrimSpace(markerChars.Replace(line))
	if title == "" {
		return "", false
	}
	return title, true
}
