package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/Alia5/suitegen/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding the global settings with
// their default values.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,yml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to suitegen.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates the template via reflection over the Settings struct and its tags.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root := buildMapFromStruct(reflect.TypeOf(Settings{}), format, "")

	dest := c.Output
	if dest == "" {
		dest = configpaths.AppName + "." + configpaths.Ext(format)
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s exists; use --force to overwrite", dest)
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := marshalConfig(root, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	logger.Info("Wrote configuration template", "file", dest, "format", format)
	return nil
}

func marshalConfig(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName returns the kong flag name of a field without any embed prefix.
func flagName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	return kebabCase(f.Name)
}

// nestedKeys reports whether the format's kong resolver walks nested tables
// for prefixed flags. kong.JSON does (splitting "log.level" on the dot) and
// expects underscores; kong-yaml and kong-toml look up the flag name itself.
func nestedKeys(format string) bool {
	return format == "json"
}

func kebabCase(s string) string {
	var b strings.Builder
	r := []rune(s)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('-')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// buildMapFromStruct collects the default of every flag in t, keyed the way
// the resolver for format expects. prefix is the embed prefix of t when keys
// are flat.
func buildMapFromStruct(t reflect.Type, format, prefix string) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			embedPrefix := f.Tag.Get("prefix")
			if nestedKeys(format) {
				sub := buildMapFromStruct(f.Type, format, "")
				if name := strings.TrimSuffix(embedPrefix, "."); name != "" {
					out[name] = sub
					continue
				}
				for k, v := range sub {
					out[k] = v
				}
				continue
			}
			for k, v := range buildMapFromStruct(f.Type, format, prefix+embedPrefix) {
				out[k] = v
			}
			continue
		}

		if f.Type.Kind() != reflect.String && f.Type.Kind() != reflect.Bool {
			continue
		}

		key := prefix + flagName(f)
		if nestedKeys(format) {
			key = strings.ReplaceAll(flagName(f), "-", "_")
		}
		def := f.Tag.Get("default")
		if f.Type.Kind() == reflect.Bool {
			out[key] = def == "true"
			continue
		}
		out[key] = def
	}
	return out
}
