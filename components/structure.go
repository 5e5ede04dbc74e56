package components

type App struct {
	Name        string
	Description string
	Version     string
	Commands    []Command
}

type Command struct {
	Name        string
	Description string
	Flags       []Flag
	Action      ActionFunc
}

type ActionFunc func(c *Context) error
