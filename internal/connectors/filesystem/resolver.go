package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolvePath converts an input URI to a cleaned absolute local path.
// Handles file:// URIs and bare paths.
func ResolvePath(uri string) string {
	path := strings.TrimPrefix(uri, "file://")

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
