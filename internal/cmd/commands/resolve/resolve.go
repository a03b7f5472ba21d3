// Package resolve implements the "nri resolve" subcommand.
package resolve

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/nri/internal/config"
	"github.com/hashicorp-forge/nri/pkg/nri"
	"github.com/hashicorp-forge/nri/pkg/resolver"
)

type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	flagConfig    string
	flagProject   string
	flagScale     float64
	flagThumbnail string
}

func (c *Command) Synopsis() string {
	return "Resolve a resource identifier into a loadable reference"
}

func (c *Command) Help() string {
	return `Usage: nri resolve [options] <identifier>

  Resolve a resource identifier against the local filesystem and print the
  reference an asset loader would receive.

Options:
  -config=<path>     HCL configuration file (project root, thumbnails).
  -project=<path>    Project root for project-relative identifiers;
                     overrides the configured root.
  -scale=<factor>    Display scale hint. The identifier's own scale query
                     wins when both are present.
  -thumbnail=<name>  Request a thumbnail variant.

  Example:
    nri resolve -project=/proj "nprs::images/bg.jpg?scale=2.0"`
}

func (c *Command) Run(args []string) int {
	flags := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags.Usage = func() { c.UI.Output(c.Help()) }
	flags.StringVar(&c.flagConfig, "config", "", "HCL configuration file")
	flags.StringVar(&c.flagProject, "project", "", "project root")
	flags.Float64Var(&c.flagScale, "scale", 0, "display scale hint")
	flags.StringVar(&c.flagThumbnail, "thumbnail", "", "thumbnail variant")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 1 {
		c.UI.Error("exactly one identifier argument is required")
		c.UI.Output(c.Help())
		return 1
	}

	cfg := config.Default()
	if c.flagConfig != "" {
		loaded, err := config.LoadFile(c.flagConfig)
		if err != nil {
			c.UI.Error(fmt.Sprintf("failed to load configuration: %v", err))
			return 1
		}
		cfg = loaded
	}

	id, err := nri.Parse(flags.Arg(0))
	if err != nil {
		c.UI.Error(fmt.Sprintf("parse failed: %v", err))
		return 1
	}

	r := resolver.New(resolver.Config{
		Projects:   cfg.ProjectContext(),
		Thumbnails: cfg.Thumbnailer(),
		Logger:     c.Log,
	})

	hints := resolver.Hints{
		Scale:       c.flagScale,
		ProjectPath: c.flagProject,
	}
	if c.flagThumbnail != "" {
		hints.Thumbnail = &resolver.ThumbnailSpec{Variant: c.flagThumbnail}
	}

	ref, err := r.Resolve(id, hints)
	if err != nil {
		c.UI.Error(fmt.Sprintf("resolve failed: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("kind:    %s", ref.Kind))
	c.UI.Output(fmt.Sprintf("path:    %s", ref.Path))
	if ref.Package != "" {
		c.UI.Output(fmt.Sprintf("package: %s", ref.Package))
	}
	if ref.Scale == 0 {
		c.UI.Output("scale:   (scale-free)")
	} else {
		c.UI.Output(fmt.Sprintf("scale:   %g", ref.Scale))
	}
	return 0
}
