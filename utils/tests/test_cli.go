package tests

import (
	"os"
)

// KeycloakifyCli drives the CLI in-process for tests: it rewrites os.Args
// the way a real invocation would and calls the provided main function.
type KeycloakifyCli struct {
	main   func() error
	prefix string
}

func NewKeycloakifyCli(mainFunc func() error, prefix string) *KeycloakifyCli {
	return &KeycloakifyCli{main: mainFunc, prefix: prefix}
}

func (cli *KeycloakifyCli) Exec(args ...string) error {
	origArgs := os.Args
	defer func() {
		os.Args = origArgs
	}()
	os.Args = append([]string{cli.prefix}, args...)
	return cli.main()
}
