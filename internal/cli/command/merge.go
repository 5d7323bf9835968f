package command

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/confmerge-go/internal/cli/output"
	"github.com/yndnr/confmerge-go/internal/telemetry/logger"
	"github.com/yndnr/confmerge-go/pkg/aggregate"
	"github.com/yndnr/confmerge-go/pkg/tree"
)

func useIncludePathFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "use-include-path",
		Aliases: []string{"i"},
		Usage:   "Search include paths for relative sources that do not exist",
	}
}

// StringCommand returns the string command.
func StringCommand() *cli.Command {
	return &cli.Command{
		Name:      "string",
		Usage:     "Merge documents of one format read from files or stdin",
		ArgsUsage: "[FILE|-]...",
		Description: `Every argument is read as a raw document and parsed with --format,
regardless of its name. "-" or no arguments reads stdin.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Usage:    "Format identifier of every document",
				Required: true,
			},
		},
		Action: runString,
	}
}

func runString(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	sources := c.Args().Slice()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	contents := make([]string, 0, len(sources))
	for _, src := range sources {
		data, err := readSource(c.App.Reader, rt.Fs, src)
		if err != nil {
			return err
		}
		contents = append(contents, string(data))
	}

	m, err := rt.Aggregator.FromStrings(contents, c.String("format"))
	if err != nil {
		return err
	}
	return emit(c, rt, m)
}

func readSource(stdin io.Reader, fs afero.Fs, src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

// FileCommand returns the file command.
func FileCommand() *cli.Command {
	return &cli.Command{
		Name:      "file",
		Usage:     "Merge files, choosing each parser from the file extension",
		ArgsUsage: "FILE...",
		Flags:     []cli.Flag{useIncludePathFlag()},
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			if c.NArg() == 0 {
				return fmt.Errorf("at least one file is required")
			}

			m, err := rt.Aggregator.FromFiles(c.Args().Slice(), sourceOptions(c)...)
			if err != nil {
				return err
			}
			return emit(c, rt, m)
		},
	}
}

// DirCommand returns the dir command.
func DirCommand() *cli.Command {
	return &cli.Command{
		Name:      "dir",
		Usage:     "Merge every file below one or more directories",
		ArgsUsage: "DIR...",
		Description: `Directories are walked self-first with entries in name order. A
directory that does not exist contributes nothing.`,
		Flags: []cli.Flag{useIncludePathFlag()},
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			if c.NArg() == 0 {
				return fmt.Errorf("at least one directory is required")
			}

			m, err := rt.Aggregator.FromDirectories(c.Args().Slice(), sourceOptions(c)...)
			if err != nil {
				return err
			}
			return emit(c, rt, m)
		},
	}
}

func sourceOptions(c *cli.Context) []aggregate.SourceOption {
	if c.Bool("use-include-path") {
		return []aggregate.SourceOption{aggregate.UseIncludePath()}
	}
	return nil
}

// emit prints a merged tree according to the output settings.
func emit(c *cli.Context, rt *Runtime, m *tree.Map) error {
	log := logger.L(logger.WithCommand(c.Context, c.Command.Name))

	if rt.Config.Output.Redact {
		m = output.Redact(m)
	}

	if c.Bool("fingerprint") {
		sum, err := output.Fingerprint(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, sum)
		return err
	}

	format, err := output.ParseFormat(rt.Config.Output.Format)
	if err != nil {
		return err
	}

	var data any = m
	if key := c.String("key"); key != "" {
		view, err := aggregate.NewView(m)
		if err != nil {
			return err
		}
		v, ok := view.Value(key)
		if !ok {
			return fmt.Errorf("key %q not found", key)
		}
		data = v
	}

	log.Debug("emitting result", "format", format, "keys", m.Len())
	return output.NewFormatter(format).Format(c.App.Writer, data)
}
