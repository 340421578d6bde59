package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format string
	}{
		{name: "json", path: "custom.json", format: "json"},
		{name: "yaml", path: "custom.yaml", format: "yaml"},
		{name: "yml", path: "custom.yml", format: "yaml"},
		{name: "toml", path: "custom.toml", format: "toml"},
		{name: "unknown extension falls back to json", path: "custom.conf", format: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths(tt.path)
			var first string
			switch tt.format {
			case "json":
				first = jsonPaths[0]
			case "yaml":
				first = yamlPaths[0]
			case "toml":
				first = tomlPaths[0]
			}
			assert.Equal(t, tt.path, first)
		})
	}
}

func TestConfigCandidatePathsProjectDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("")
	assert.Equal(t, filepath.Join(wd, "suitegen.json"), jsonPaths[0])
	assert.Equal(t, filepath.Join(wd, "suitegen.yaml"), yamlPaths[0])
	assert.Equal(t, filepath.Join(wd, "suitegen.yml"), yamlPaths[1])
	assert.Equal(t, filepath.Join(wd, "suitegen.toml"), tomlPaths[0])
	assert.Contains(t, jsonPaths, filepath.Join(wd, ".suitegen.json"))
}

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Setenv("AppData", `C:\Users\me\AppData\Roaming`)
		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(`C:\Users\me\AppData\Roaming`, "suitegen"), dir)
		return
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "suitegen"), dir)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/me")
	dir, err = DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/me", ".config", "suitegen"), dir)
}

func TestExt(t *testing.T) {
	assert.Equal(t, "json", Ext("json"))
	assert.Equal(t, "yaml", Ext("yml"))
	assert.Equal(t, "yaml", Ext("yaml"))
	assert.Equal(t, "toml", Ext("toml"))
	assert.Equal(t, "json", Ext(""))
}
