package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/confmerge-go/internal/cli/output"
	"github.com/yndnr/confmerge-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(rt.Config.Output.Format)
			if err != nil {
				return err
			}
			return output.NewFormatter(format).Format(c.App.Writer, buildinfo.Get())
		},
	}
}
