package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/confmerge-go/internal/cli/output"
)

// FormatsCommand returns the formats command.
func FormatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "List registered format identifiers and their plugins",
		Action: func(c *cli.Context) error {
			rt, err := mustRuntime(c)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(rt.Config.Output.Format)
			if err != nil {
				return err
			}
			return output.NewFormatter(format).Format(c.App.Writer, rt.Resolver.Formats())
		},
	}
}
