package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LogPath is an optional file the logger writes to in addition to stdout.
// The zero value means no log file.
type LogPath string

// NewLogPath creates a new LogPath. An empty path is allowed and disables file logging.
func NewLogPath(path string) (LogPath, error) {
	if len(path) == 0 {
		return "", nil
	}

	cleanPath := filepath.Clean(path)
	if strings.ContainsAny(cleanPath, "<>\"|?*") {
		return "", fmt.Errorf("log path contains invalid characters: %s", cleanPath)
	}

	return LogPath(cleanPath), nil
}
