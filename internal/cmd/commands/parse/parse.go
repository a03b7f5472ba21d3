// Package parse implements the "nri parse" subcommand.
package parse

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/nri/pkg/nri"
)

type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}

func (c *Command) Synopsis() string {
	return "Parse a resource identifier and describe its parts"
}

func (c *Command) Help() string {
	return `Usage: nri parse <identifier>

  Parse a resource identifier and print its scheme, path segments, query
  entries and canonical form.

  Example:
    nri parse "nars::assets/icon.png?scale=2.0"`
}

func (c *Command) Run(args []string) int {
	flags := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Output(c.Help()) }
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 1 {
		c.UI.Error("exactly one identifier argument is required")
		c.UI.Output(c.Help())
		return 1
	}

	id, err := nri.Parse(flags.Arg(0))
	if err != nil {
		c.UI.Error(fmt.Sprintf("parse failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("scheme:    %s", id.Scheme()))
	c.UI.Output(fmt.Sprintf("path:      %s", id.Path()))
	c.UI.Output(fmt.Sprintf("filename:  %s", id.Filename()))
	c.UI.Output(fmt.Sprintf("extension: %s", id.Extension()))

	for i, segment := range id.Segments() {
		c.UI.Output(fmt.Sprintf("segment %d: %q", i, segment))
	}
	for _, entry := range id.Queries() {
		if value, hasValue := entry.Value(); hasValue {
			c.UI.Output(fmt.Sprintf("query:     %s = %q", entry.Key(), value))
		} else {
			c.UI.Output(fmt.Sprintf("query:     %s (flag)", entry.Key()))
		}
	}

	c.UI.Output(fmt.Sprintf("canonical: %s", id.String()))
	return 0
}
