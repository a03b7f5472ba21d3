package main

import (
	"os"

	"github.com/hashicorp-forge/nri/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
