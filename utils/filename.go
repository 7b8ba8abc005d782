package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// SafeImageFileName builds the on-disk name for an uploaded image:
// lowercase, unsafe characters collapsed to dashes, original extension
// preserved, and a timestamp prefix so re-uploads of the same file never
// collide.
func SafeImageFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	base = unsafeChars.ReplaceAllString(strings.ToLower(base), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "image"
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), base, ext)
}

// IsExternalURL reports whether path points outside the local image store
func IsExternalURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// IsDataURI reports whether path is an embedded data URI rather than a
// stored file.
func IsDataURI(path string) bool {
	return strings.HasPrefix(path, "data:")
}
