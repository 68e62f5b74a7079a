package util

import (
	"strings"
	"testing"
)

func TestRandomFileNameExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{ext: ".png", want: ".png"},
		{ext: "png", want: ".png"},
		{ext: ".pdf", want: ".pdf"},
		{ext: "", want: ""},
	}

	for _, tc := range tests {
		name, err := RandomFileName(tc.ext)
		if err != nil {
			t.Fatalf("RandomFileName(%q) error = %v", tc.ext, err)
		}
		if tc.want != "" && !strings.HasSuffix(name, tc.want) {
			t.Fatalf("RandomFileName(%q) = %q, want suffix %q", tc.ext, name, tc.want)
		}
		if strings.ContainsAny(name, "/\\") {
			t.Fatalf("RandomFileName(%q) = %q contains a path separator", tc.ext, name)
		}
	}
}

func TestRandomFileNameUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		name, err := RandomFileName(".png")
		if err != nil {
			t.Fatalf("RandomFileName() error = %v", err)
		}
		if seen[name] {
			t.Fatalf("RandomFileName() produced duplicate %q", name)
		}
		seen[name] = true
	}
}
