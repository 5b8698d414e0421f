package main

import (
	"os"

	"github.com/chubflix/episode-stage/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
