package keycloakify

import "fmt"

var agentName = "keycloakify"
var agentVersion = "11.8.17"

func GetVersion() string {
	return agentVersion
}

func GetName() string {
	return agentName
}

func GetUserAgent() string {
	return fmt.Sprintf("%s/%s", agentName, agentVersion)
}
