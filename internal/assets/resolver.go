package assets

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no resolution strategy locates the asset.
var ErrNotFound = errors.New("asset not found")

// Default asset locations relative to the project root
const (
	DefaultLogoPath = "assets/youtube_logo.png"
	DefaultFontPath = "assets/fonts/PressStart2P-Regular.ttf"
)

// Resolve locates a relative asset path, trying strategies in order:
// the path as given, the path joined to the working directory, and the
// path joined to the project root derived from the running executable.
// The host may launch widgets from different working directories depending
// on deployment, so a single fixed base cannot work.
func Resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", ErrNotFound
	}

	// Strategy 1: as given (running from the project root)
	if fileExists(relPath) {
		return relPath, nil
	}

	// Strategy 2: relative to the current working directory
	if cwd, err := os.Getwd(); err == nil {
		cwdPath := filepath.Join(cwd, relPath)
		if fileExists(cwdPath) {
			return cwdPath, nil
		}
	}

	// Strategy 3: relative to the project root above the install location
	if root, err := projectRoot(); err == nil {
		rootPath := filepath.Join(root, relPath)
		if fileExists(rootPath) {
			return rootPath, nil
		}
	}

	return "", ErrNotFound
}

// projectRoot walks up from the executable's directory. Binaries install
// under <root>/bin or a plugin directory two levels below the root, so two
// parents up is the project root.
func projectRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exeDir := filepath.Dir(exe)
	return filepath.Dir(filepath.Dir(exeDir)), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
