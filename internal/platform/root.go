package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Root indicators.
const (
	MarkerDir  = ".notepad"
	ConfigFile = "notepad.yaml"
)

// ErrNoRoot is returned by FindRoot when no directory up to the filesystem
// root carries an indicator.
var ErrNoRoot = errors.New("notepad root not found")

// FindRoot returns the absolute path of the nearest directory, starting at
// startDir and walking up, that holds a .notepad directory or a notepad.yaml
// file.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := abs; ; {
		if exists(filepath.Join(dir, MarkerDir)) || exists(filepath.Join(dir, ConfigFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w above %s", ErrNoRoot, abs)
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
