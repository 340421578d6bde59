// Package configpaths lists the places suitegen looks for configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the base name used for config directories and files.
const AppName = "suitegen"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, AppName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// Ext maps a format name to its file extension (without the dot).
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format, in
// priority order. If userPath is provided it comes first and is routed to the
// loader matching its extension (JSON when unknown).
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }
	addBase := func(dir, base string) {
		add(&jsonPaths, filepath.Join(dir, base+".json"))
		add(&yamlPaths, filepath.Join(dir, base+".yaml"))
		add(&yamlPaths, filepath.Join(dir, base+".yml"))
		add(&tomlPaths, filepath.Join(dir, base+".toml"))
	}

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	// Project directory
	if wd, err := os.Getwd(); err == nil {
		addBase(wd, AppName)
		addBase(wd, "."+AppName)
	}

	// Config home
	if dir, err := DefaultConfigDir(); err == nil {
		addBase(dir, "config")
	}

	// System-wide (unix)
	if runtime.GOOS != "windows" {
		addBase(filepath.Join("/etc", AppName), "config")
	}

	return
}
