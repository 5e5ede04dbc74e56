package components

type Context struct {
	Arguments   []string
	stringFlags map[string]string
	boolFlags   map[string]bool
	intFlags    map[string]int
	setFlags    map[string]bool
}

func (c *Context) GetStringFlagValue(flagName string) string {
	return c.stringFlags[flagName]
}

func (c *Context) GetBoolFlagValue(flagName string) bool {
	return c.boolFlags[flagName]
}

func (c *Context) GetIntFlagValue(flagName string) int {
	return c.intFlags[flagName]
}

// Reports whether the flag was actually supplied on the command line,
// as opposed to carrying its default value.
func (c *Context) IsFlagSet(flagName string) bool {
	return c.setFlags[flagName]
}
