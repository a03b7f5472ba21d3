package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/nri/internal/cmd/commands/parse"
	"github.com/hashicorp-forge/nri/internal/cmd/commands/resolve"
	versioncmd "github.com/hashicorp-forge/nri/internal/cmd/commands/version"
)

// Commands is the mapping of subcommand names to factories.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = map[string]cli.CommandFactory{
		"parse": func() (cli.Command, error) {
			return &parse.Command{UI: ui, Log: log}, nil
		},
		"resolve": func() (cli.Command, error) {
			return &resolve.Command{UI: ui, Log: log}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{UI: ui}, nil
		},
	}
}
