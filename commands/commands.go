package commands

import (
	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/components"
)

const (
	projectFlagName         = "project"
	portFlagName            = "port"
	keycloakVersionFlagName = "keycloak-version"
	importFlagName          = "import"
	fileFlagName            = "file"
)

// GetCommands assembles the full command catalog. Option tokens are unique
// across the whole catalog, not per command: the conversion layer registers
// them all in one flat registry and validates every invocation against it.
func GetCommands() []components.Command {
	return []components.Command{
		{
			Name:        "build",
			Description: "Build the Keycloak theme. This is the default command.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewBuildCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "start-keycloak",
			Description: "Spin up a Keycloak testing container with the theme loaded.",
			Flags: []components.Flag{
				projectFlag(),
				components.IntFlag{
					Name:         portFlagName,
					Description:  "Port the Keycloak testing container binds to.",
					DefaultValue: DefaultKeycloakPort,
				},
				components.StringFlag{
					Name:        keycloakVersionFlagName,
					Description: "Version of the Keycloak server to spin up. Example: 26.0.4",
				},
				components.StringFlag{
					Name:        importFlagName,
					Description: "Path of a realm .json file to import when the container starts.",
				},
			},
			Action: func(c *components.Context) error {
				if c.IsFlagSet(keycloakVersionFlagName) {
					assertValidKeycloakVersion(c.GetStringFlagValue(keycloakVersionFlagName))
				}
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewStartKeycloakCommand().
						SetBuildContext(buildContext).
						SetKeycloakVersion(c.GetStringFlagValue(keycloakVersionFlagName)).
						SetPort(c.GetIntFlagValue(portFlagName)).
						SetRealmJsonFilePath(c.GetStringFlagValue(importFlagName)), nil
				})
			},
		},
		{
			Name:        "eject-page",
			Description: "Eject a theme page so it can be customized.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewEjectPageCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "add-story",
			Description: "Add a Storybook story for a given page.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewAddStoryCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "initialize-email-theme",
			Description: "Scaffold an email theme.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewInitializeEmailThemeCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "initialize-account-theme",
			Description: "Scaffold an account theme.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewInitializeAccountThemeCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "copy-keycloak-resources-to-public",
			Description: "Copy the Keycloak static resources into the public directory.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewCopyKeycloakResourcesCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "update-kc-gen",
			Description: "Regenerate the kc.gen.tsx file from the project configuration.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewUpdateKcGenCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "postinstall",
			Description: "Initialize the installed Keycloakify UI modules.",
			Flags:       []components.Flag{projectFlag()},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewPostInstallCommand().SetBuildContext(buildContext), nil
				})
			},
		},
		{
			Name:        "eject-file",
			Description: "Take ownership of a given file of the theme.",
			Flags: []components.Flag{
				projectFlag(),
				components.StringFlag{
					Name:        fileFlagName,
					Description: "Relative path of the theme file to take ownership of.",
					Mandatory:   true,
				},
			},
			Action: func(c *components.Context) error {
				return runHandler(c, func(buildContext *project.BuildContext) (Command, error) {
					return NewEjectFileCommand().
						SetBuildContext(buildContext).
						SetRelativeFilePath(c.GetStringFlagValue(fileFlagName)), nil
				})
			},
		},
	}
}

func projectFlag() components.StringFlag {
	return components.StringFlag{
		Name:        projectFlagName,
		ShortName:   "p",
		Description: "Path of the keycloakify project. Defaults to the working directory.",
	}
}

// Handlers are resolved lazily: the factory runs only once its command has
// been selected and its options validated, so a failure constructing one
// command's handler never affects the registration of the others.
func runHandler(c *components.Context, newHandler func(buildContext *project.BuildContext) (Command, error)) error {
	buildContext, err := project.GetBuildContext(c.GetStringFlagValue(projectFlagName))
	if err != nil {
		return err
	}
	handler, err := newHandler(buildContext)
	if err != nil {
		return err
	}
	return Exec(handler)
}
