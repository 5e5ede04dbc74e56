package cli

import (
	"github.com/timofei-iatsenko/keycloakify"
	"github.com/timofei-iatsenko/keycloakify/commands"
	"github.com/timofei-iatsenko/keycloakify/components"
	"github.com/timofei-iatsenko/keycloakify/docs/common"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/urfave/cli"
)

// RunCli assembles the command catalog into a CLI application and runs it
// against the provided process arguments. Exactly one command executes per
// invocation; its error, if any, is returned to the caller's exit sink.
func RunCli(args []string) error {
	cli.CommandHelpTemplate = common.CommandHelpTemplate
	cli.AppHelpTemplate = common.AppHelpTemplate

	app := components.ConvertApp(components.App{
		Name:        coreutils.GetCliExecutableName(),
		Description: "Create Keycloak themes using React.",
		Version:     keycloakify.GetVersion(),
		Commands:    commands.GetCommands(),
	})
	return app.Run(args)
}
