package main

import (
	"os"
	"strings"

	"github.com/Alia5/suitegen/internal/config"
	"github.com/Alia5/suitegen/internal/configpaths"
	"github.com/Alia5/suitegen/internal/log"
	"github.com/Alia5/suitegen/internal/stub"
	"github.com/Alia5/suitegen/internal/util"
	"github.com/Alia5/suitegen/internal/version"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	ver, err := version.Get()
	if err != nil {
		ver = version.Version
	}

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name(configpaths.AppName),
		kong.Description("Scaffolding for ts test suites: generate the test entry point and create new suite stubs"),
		kong.UsageOnError(),
		kong.Vars{"version": ver},
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log, os.Stdout, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	if err := util.EnableUTF8Console(); err != nil {
		logger.Debug("Could not switch console to UTF-8", "error", err)
	}

	ctx.Bind(logger)
	ctx.BindTo(log.NewReporter(os.Stdout), (*log.Reporter)(nil))
	ctx.BindTo(stub.NewConsoleConfirmer(), (*stub.Confirmer)(nil))
	ctx.Bind(cli.Layout)
	ctx.Bind(cli.GeneratorOptions())

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("SUITEGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
