package command

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/confmerge-go/internal/cli/config"
	"github.com/yndnr/confmerge-go/internal/infra/buildinfo"
	"github.com/yndnr/confmerge-go/internal/telemetry/logger"
	"github.com/yndnr/confmerge-go/internal/telemetry/metric"
	"github.com/yndnr/confmerge-go/pkg/aggregate"
	"github.com/yndnr/confmerge-go/pkg/format"
)

const runtimeKey = "runtime"

// Runtime holds the objects shared by every command of one invocation.
type Runtime struct {
	Config     *config.CLIConfig
	Logger     *slog.Logger
	Metrics    *metric.Registry
	Resolver   *format.Resolver
	Aggregator *aggregate.Aggregator
	Fs         afero.Fs
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "confmerge",
		Usage:   "Merge configuration files of mixed formats into one tree",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			StringCommand(),
			FileCommand(),
			DirCommand(),
			FormatsCommand(),
			VersionCommand(),
		},
		Before: setup,
		After: func(c *cli.Context) error {
			rt := GetRuntime(c)
			if rt == nil || !c.Bool("stats") {
				return nil
			}
			return rt.Metrics.WriteText(c.App.ErrWriter)
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "CLI configuration file (default ~/.confmerge/cli.yaml)",
			EnvVars: []string{"CONFMERGE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringSliceFlag{
			Name:    "include-path",
			Aliases: []string{"I"},
			Usage:   "Directory searched by --use-include-path (repeatable)",
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Print only the value at this dotted path",
		},
		&cli.BoolFlag{
			Name:  "redact",
			Usage: "Mask values under sensitive keys",
		},
		&cli.BoolFlag{
			Name:  "fingerprint",
			Usage: "Print a content fingerprint instead of the tree",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "Write metrics to stderr when done",
		},
		&cli.StringSliceFlag{
			Name:  "format-plugin",
			Usage: "Register a format as ID=PLUGIN (repeatable)",
		},
	}
}

// setup loads the CLI configuration and builds the Runtime.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}

	reg := metric.NewRegistry()
	resolver := format.NewResolver(nil, format.WithObserver(reg))
	reg.TrackFormats(resolver)

	ids := make([]string, 0, len(cfg.Formats))
	for id := range cfg.Formats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		resolver.Register(id, cfg.Formats[id])
	}

	for _, entry := range c.StringSlice("format-plugin") {
		id, plugin, ok := strings.Cut(entry, "=")
		if !ok || id == "" || plugin == "" {
			return fmt.Errorf("invalid --format-plugin %q (want ID=PLUGIN)", entry)
		}
		resolver.Register(id, plugin)
	}

	if err := reg.Register(metric.NewCollector(resolver)); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}

	fs := afero.NewOsFs()
	rt := &Runtime{
		Config:   cfg,
		Logger:   log,
		Metrics:  reg,
		Resolver: resolver,
		Fs:       fs,
		Aggregator: aggregate.New(
			aggregate.WithResolver(resolver),
			aggregate.WithFs(fs),
			aggregate.WithLogger(log),
			aggregate.WithMetrics(reg),
			aggregate.WithIncludePaths(cfg.Include.Paths...),
		),
	}

	c.App.Metadata[runtimeKey] = rt
	c.Context = logger.WithLogger(c.Context, log)

	log.Debug("runtime ready",
		"output", cfg.Output.Format,
		"include_paths", len(cfg.Include.Paths),
		"formats", len(resolver.Formats()),
	)
	return nil
}

// flagOverrides collects the flags that map onto CLI configuration keys.
// Only flags set explicitly are returned.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	if c.IsSet("redact") {
		overrides["output.redact"] = c.Bool("redact")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.IsSet("include-path") {
		overrides["include.paths"] = c.StringSlice("include-path")
	}
	return overrides
}

// GetRuntime retrieves the runtime built by the root command.
func GetRuntime(c *cli.Context) *Runtime {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt
	}
	return nil
}

func mustRuntime(c *cli.Context) (*Runtime, error) {
	rt := GetRuntime(c)
	if rt == nil {
		return nil, fmt.Errorf("runtime not initialized")
	}
	return rt, nil
}
