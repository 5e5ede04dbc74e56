package components

import (
	"fmt"
	"os"
	"strconv"

	"github.com/timofei-iatsenko/keycloakify/docs/common"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/urfave/cli"
)

func ConvertApp(kcApp App) *cli.App {
	app := cli.NewApp()
	app.Name = kcApp.Name
	app.Usage = kcApp.Description
	app.Version = kcApp.Version
	app.Commands = convertCommands(kcApp, buildOptionRegistry(kcApp))

	// Defaults:
	app.EnableBashCompletion = true
	return app
}

// Collects every flag token declared by any command into a single flat
// registry. The help tokens are always considered recognized.
func buildOptionRegistry(kcApp App) *OptionRegistry {
	registry := NewOptionRegistry()
	registry.Register(helpFlagName)
	registry.Register(helpFlagShortName)
	for _, cmd := range kcApp.Commands {
		for _, flag := range cmd.Flags {
			registry.Register(flag.GetName())
			if flag.GetShortName() != "" {
				registry.Register(flag.GetShortName())
			}
		}
	}
	return registry
}

func convertCommands(kcApp App, registry *OptionRegistry) []cli.Command {
	var converted []cli.Command
	for _, cmd := range kcApp.Commands {
		converted = append(converted, convertCommand(cmd, registry))
	}
	return converted
}

func convertCommand(cmd Command, registry *OptionRegistry) cli.Command {
	return cli.Command{
		Name:     cmd.Name,
		Usage:    cmd.Description,
		HelpName: common.CreateUsage(cmd.Name, cmd.Description, createCommandUsage(cmd)),
		Flags:    convertFlags(cmd),
		// Flag parsing is done by the action wrapper itself, so that option
		// tokens of other catalog commands are tolerated and unknown tokens
		// produce this CLI's own diagnostic.
		SkipFlagParsing: true,
		BashComplete:    common.CreateBashCompletionFunc(),
		Action:          getActionFunc(cmd, registry),
	}
}

func createCommandUsage(cmd Command) []string {
	usage := coreutils.GetCliExecutableName() + " " + cmd.Name
	if len(cmd.Flags) > 0 {
		usage += " [command options]"
	}
	return []string{usage}
}

// Converted flags serve the help output only; parsing is handled by the
// action wrapper.
func convertFlags(cmd Command) []cli.Flag {
	var convertedFlags []cli.Flag
	for _, flag := range cmd.Flags {
		convertedFlags = append(convertedFlags, convertByType(flag))
	}
	return convertedFlags
}

func convertByType(flag Flag) cli.Flag {
	switch f := flag.(type) {
	case StringFlag:
		return convertStringFlag(f)
	case BoolFlag:
		return convertBoolFlag(f)
	case IntFlag:
		return convertIntFlag(f)
	}
	return cli.StringFlag{Name: flagUsageName(flag), Usage: flag.GetDescription()}
}

func flagUsageName(flag Flag) string {
	if flag.GetShortName() != "" {
		return flag.GetName() + ", " + flag.GetShortName()
	}
	return flag.GetName()
}

func convertStringFlag(f StringFlag) cli.Flag {
	stringFlag := cli.StringFlag{
		Name:  flagUsageName(f),
		Usage: f.Description + "` `",
	}
	// If default is set, add it's value and return.
	if f.DefaultValue != "" {
		stringFlag.Usage = "[Default: " + f.DefaultValue + "] " + stringFlag.Usage
		return stringFlag
	}
	// Otherwise, mark as mandatory/optional accordingly.
	if f.Mandatory {
		stringFlag.Usage = "[Mandatory] " + stringFlag.Usage
	} else {
		stringFlag.Usage = "[Optional] " + stringFlag.Usage
	}
	return stringFlag
}

func convertBoolFlag(f BoolFlag) cli.Flag {
	if f.DefaultValue {
		return cli.BoolTFlag{
			Name:  flagUsageName(f),
			Usage: "[Default: true] " + f.Description + "` `",
		}
	}
	return cli.BoolFlag{
		Name:  flagUsageName(f),
		Usage: "[Default: false] " + f.Description + "` `",
	}
}

func convertIntFlag(f IntFlag) cli.Flag {
	return cli.IntFlag{
		Name:  flagUsageName(f),
		Usage: "[Default: " + strconv.Itoa(f.DefaultValue) + "] " + f.Description + "` `",
	}
}

const (
	helpFlagName      = "help"
	helpFlagShortName = "h"
)

// Wrap the command's ActionFunc with our own, parsing and validating the
// raw arguments before the command is allowed to run.
func getActionFunc(cmd Command, registry *OptionRegistry) cli.ActionFunc {
	return func(baseContext *cli.Context) error {
		options, positional := parseRawArgs(baseContext.Args())
		for _, option := range options {
			if option.Key == helpFlagName || option.Key == helpFlagShortName {
				return cli.ShowCommandHelp(baseContext, cmd.Name)
			}
		}
		if key, found := findUnrecognizedOption(registry, options); found {
			fmt.Fprintf(os.Stderr, "%s: Unrecognized option: %s\n", coreutils.GetCliExecutableName(), formatOptionToken(key))
			os.Exit(coreutils.ExitCodeError.Code)
		}
		kcContext, err := fillFlagMaps(cmd, options, positional)
		if err != nil {
			return err
		}
		return cmd.Action(kcContext)
	}
}

func fillFlagMaps(cmd Command, options []suppliedOption, positional []string) (*Context, error) {
	c := &Context{
		Arguments:   positional,
		stringFlags: make(map[string]string),
		boolFlags:   make(map[string]bool),
		intFlags:    make(map[string]int),
		setFlags:    make(map[string]bool),
	}

	// Loop over all the command's known flags. Supplied tokens that belong
	// to other catalog commands are deliberately left out of the maps.
	for _, flag := range cmd.Flags {
		supplied, wasSupplied := findSuppliedOption(flag, options)
		c.setFlags[flag.GetName()] = wasSupplied

		switch f := flag.(type) {
		case StringFlag:
			finalValue, err := getValueForStringFlag(f, supplied, wasSupplied)
			if err != nil {
				return nil, err
			}
			c.stringFlags[f.Name] = finalValue
		case BoolFlag:
			finalValue, err := getValueForBoolFlag(f, supplied, wasSupplied)
			if err != nil {
				return nil, err
			}
			c.boolFlags[f.Name] = finalValue
		case IntFlag:
			finalValue, err := getValueForIntFlag(f, supplied, wasSupplied)
			if err != nil {
				return nil, err
			}
			c.intFlags[f.Name] = finalValue
		}
	}
	return c, nil
}

func findSuppliedOption(flag Flag, options []suppliedOption) (suppliedOption, bool) {
	for _, option := range options {
		if option.Key == flag.GetName() || (flag.GetShortName() != "" && option.Key == flag.GetShortName()) {
			return option, true
		}
	}
	return suppliedOption{}, false
}

func getValueForStringFlag(f StringFlag, supplied suppliedOption, wasSupplied bool) (string, error) {
	if wasSupplied {
		if !supplied.HasValue || supplied.Value == "" {
			return "", fmt.Errorf("Flag --%s is provided with empty value.", f.Name)
		}
		return supplied.Value, nil
	}
	if f.DefaultValue != "" {
		return f.DefaultValue, nil
	}
	if f.Mandatory {
		return "", fmt.Errorf("Mandatory flag '%s' is missing", f.Name)
	}
	return "", nil
}

func getValueForBoolFlag(f BoolFlag, supplied suppliedOption, wasSupplied bool) (bool, error) {
	if !wasSupplied {
		return f.DefaultValue, nil
	}
	if !supplied.HasValue {
		return true, nil
	}
	boolValue, err := strconv.ParseBool(supplied.Value)
	if err != nil {
		return false, fmt.Errorf("Flag --%s expects a boolean value: %s", f.Name, supplied.Value)
	}
	return boolValue, nil
}

func getValueForIntFlag(f IntFlag, supplied suppliedOption, wasSupplied bool) (int, error) {
	if !wasSupplied {
		return f.DefaultValue, nil
	}
	if !supplied.HasValue {
		return 0, fmt.Errorf("Flag --%s expects an integer value.", f.Name)
	}
	intValue, err := strconv.Atoi(supplied.Value)
	if err != nil {
		return 0, fmt.Errorf("Flag --%s expects an integer value: %s", f.Name, supplied.Value)
	}
	return intValue, nil
}
