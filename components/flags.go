package components

type Flag interface {
	GetName() string
	GetShortName() string
	GetDescription() string
}

type StringFlag struct {
	Name        string
	ShortName   string
	Description string
	// A flag with default value cannot be mandatory.
	DefaultValue string
	Mandatory    bool
}

func (f StringFlag) GetName() string {
	return f.Name
}

func (f StringFlag) GetShortName() string {
	return f.ShortName
}

func (f StringFlag) GetDescription() string {
	return f.Description
}

func (f StringFlag) GetDefault() string {
	return f.DefaultValue
}

type BoolFlag struct {
	Name         string
	ShortName    string
	Description  string
	DefaultValue bool
}

func (f BoolFlag) GetName() string {
	return f.Name
}

func (f BoolFlag) GetShortName() string {
	return f.ShortName
}

func (f BoolFlag) GetDescription() string {
	return f.Description
}

func (f BoolFlag) GetDefault() bool {
	return f.DefaultValue
}

type IntFlag struct {
	Name         string
	ShortName    string
	Description  string
	DefaultValue int
}

func (f IntFlag) GetName() string {
	return f.Name
}

func (f IntFlag) GetShortName() string {
	return f.ShortName
}

func (f IntFlag) GetDescription() string {
	return f.Description
}

func (f IntFlag) GetDefault() int {
	return f.DefaultValue
}
