package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands environment variables and a leading "~" or "~/" to the
// current user's home directory. Other "~name" forms are left alone. An empty
// path stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	path = os.ExpandEnv(path)
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
