package util

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// filenameAlphabet avoids '-' and '_' so generated names stay unambiguous
// in URLs and shell commands.
const filenameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomFileName generates a unique filename with the given extension.
// The extension may be passed with or without a leading dot.
func RandomFileName(ext string) (string, error) {
	id, err := gonanoid.Generate(filenameAlphabet, 21)
	if err != nil {
		return "", fmt.Errorf("failed to generate file id: %w", err)
	}
	if ext == "" {
		return id, nil
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return id + ext, nil
}
