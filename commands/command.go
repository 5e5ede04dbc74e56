package commands

import (
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

type Command interface {
	// Runs the command
	Run() error
	// The command name, as invoked on the command line.
	CommandName() string
}

func Exec(command Command) error {
	log.Debug("Running command: ", command.CommandName())
	return command.Run()
}
