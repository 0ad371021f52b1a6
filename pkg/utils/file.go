package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strings"
)

var disallowedFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_\-\.]`)

// LoadText reads the whole file, or stdin when filename is "-" or empty.
func LoadText(filename string) (string, error) {
	if filename == "" || filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return string(data), nil
}

// SaveTextToFile saves the given text content to a file with the specified filename.
// If the file does not exist, it will be created. If it does exist, it will be overwritten.
func SaveTextToFile(dir, filename, extension, text string) (string, error) {
	filename = fmt.Sprintf("%s.%s", SanitizeFilename(filename), extension)

	target := path.Join(dir, filename)
	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write to file: %w", err)
	}

	return target, nil
}

func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\"", "")
	filename = strings.ReplaceAll(filename, ".", "_")
	filename = strings.ReplaceAll(filename, " ", "_")
	filename = disallowedFilenameChars.ReplaceAllString(filename, "")

	if len(filename) > 150 {
		filename = filename[:150]
	}
	return filename
}
