package common

const CommandHelpTemplate = `{{.HelpName}}{{if .UsageText}}
Arguments:
{{.UsageText}}
{{end}}{{if .VisibleFlags}}
Options:
	{{range .VisibleFlags}}{{.}}
	{{end}}{{end}}
`

const AppHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}

USAGE:
   {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} [arguments...]{{end}}
   {{if .Version}}
VERSION:
   {{.Version}}
   {{end}}{{if .VisibleCommands}}
COMMANDS:
   {{range .VisibleCommands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
Environment Variables:
` + GlobalEnvVars + `{{end}}

`

const GlobalEnvVars = `	KEYCLOAKIFY_LOG_LEVEL
		[Default: INFO]
		Sets the log level of the CLI. Supported values: ERROR, WARN, INFO and DEBUG.

	KEYCLOAKIFY_LOG_TIMESTAMP
		[Default: TIME]
		Controls the log's timestamp format. Supported values: DATE_AND_TIME, TIME and OFF.`
