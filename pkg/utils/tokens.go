package utils

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const DefaultEncoding = "cl100k_base"

// CountTokens estimates how many tokens a model will see for text.
func CountTokens(text, encoding string) (int, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return 0, fmt.Errorf("load encoding %s: %w", encoding, err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}
