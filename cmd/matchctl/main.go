package main

import (
	"os"

	"jobmatch_backend/internal/cli"
)

// Заполняются через -ldflags при сборке
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, Commit, BuildTime)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
