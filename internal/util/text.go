package util

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TruncateTokens shortens text to at most maxTokens tokens using the
// o200k_base encoding. A maxTokens of zero or less disables truncation.
func TruncateTokens(text string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		return text, nil
	}

	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		return "", fmt.Errorf("failed to load token encoding: %w", err)
	}

	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text, nil
	}
	return enc.Decode(tokens[:maxTokens]), nil
}
