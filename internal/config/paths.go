package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	EnvConfigDir = "SYNTAXFORGE_CONFIG_DIR"
	appName      = "syntaxforge"
)

// Dir returns the configuration directory. SYNTAXFORGE_CONFIG_DIR wins over
// the XDG config home.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// SchemeDir is where user scheme files are looked up by default.
func SchemeDir() string {
	return filepath.Join(Dir(), "schemes")
}
