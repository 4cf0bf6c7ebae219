package main

import (
	"fmt"
	"os"

	"github.com/zeoengine/zeo/internal/cli"
	"github.com/zeoengine/zeo/internal/console"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, console.Error(err.Error()))
		os.Exit(1)
	}
}
