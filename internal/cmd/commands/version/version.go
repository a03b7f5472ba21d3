// Package version implements the "nri version" subcommand.
package version

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/nri/internal/version"
)

type Command struct {
	UI cli.Ui
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: nri version

  Print the CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
