package components

import "strings"

// A single option token supplied on the command line, in encounter order.
type suppliedOption struct {
	Key      string
	Value    string
	HasValue bool
}

// Tokenizes raw command arguments without consulting any flag definitions.
// Supported shapes: --key=value, --key value, -k value, and bare --key / -k
// (boolean). A standalone "--" terminates option parsing; everything after
// it is positional.
func parseRawArgs(args []string) (options []suppliedOption, positional []string) {
	optionsDone := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if optionsDone || !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}
		if arg == "--" {
			optionsDone = true
			continue
		}
		key := strings.TrimLeft(arg, "-")
		if name, value, found := strings.Cut(key, "="); found {
			options = append(options, suppliedOption{Key: name, Value: value, HasValue: true})
			continue
		}
		// The value, if any, is the next token, unless it looks like an option itself.
		if i+1 < len(args) && (!strings.HasPrefix(args[i+1], "-") || args[i+1] == "-") {
			options = append(options, suppliedOption{Key: key, Value: args[i+1], HasValue: true})
			i++
			continue
		}
		options = append(options, suppliedOption{Key: key})
	}
	return options, positional
}

// Returns the first supplied key that is not present in the registry,
// in encounter order. The boolean reports whether such a key was found.
func findUnrecognizedOption(registry *OptionRegistry, options []suppliedOption) (string, bool) {
	for _, option := range options {
		if !registry.Has(option.Key) {
			return option.Key, true
		}
	}
	return "", false
}

// Renders a key the way the user would type it: -x for single-character
// keys, --xxx otherwise.
func formatOptionToken(key string) string {
	if len(key) == 1 {
		return "-" + key
	}
	return "--" + key
}
