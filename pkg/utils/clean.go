package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]|[\x{1F300}-\x{1F5FF}]|[\x{1F680}-\x{1F6FF}]|[\x{1F1E0}-\x{1F1FF}]|[\x{2600}-\x{26FF}]|[\x{2700}-\x{27BF}]|[\x{1F900}-\x{1F9FF}]|[\x{1FA70}-\x{1FAFF}]|[\x{1F004}-\x{1F0CF}]`)
	// emoji variation selectors
	selectorPattern = regexp.MustCompile(`[\x{FE00}-\x{FE0F}]`)

	zeroWidth = strings.NewReplacer(
		"\u200B", " ",
		"\u200C", " ",
		"\u200D", " ",
		"\uFEFF", " ",
	)
)

// CleanText drops emojis and zero width characters and collapses runs of
// whitespace, so window boundaries fall on visible text.
func CleanText(text string) string {
	cleaned := emojiPattern.ReplaceAllString(text, "")
	cleaned = selectorPattern.ReplaceAllString(cleaned, "")
	cleaned = zeroWidth.Replace(cleaned)

	var result strings.Builder
	result.Grow(len(cleaned))

	inWhitespace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			if !inWhitespace {
				result.WriteRune(' ')
				inWhitespace = true
			}
			continue
		}
		result.WriteRune(r)
		inWhitespace = false
	}

	return strings.TrimSpace(result.String())
}
