package main

import (
	"os"

	"github.com/timofei-iatsenko/keycloakify/cli"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

func main() {
	log.SetDefaultLogger()

	// The fallback route is decided on the raw arguments, before any
	// command framework parsing occurs.
	rest := os.Args[1:]
	if cli.ShouldRouteToDefault(rest) {
		os.Exit(cli.RouteToDefault(rest))
	}

	coreutils.ExitOnErr(cli.RunCli(os.Args))
}
