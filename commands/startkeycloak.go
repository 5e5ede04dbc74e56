package commands

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/timofei-iatsenko/keycloakify/common/project"
	"github.com/timofei-iatsenko/keycloakify/utils/coreutils"
	"github.com/timofei-iatsenko/keycloakify/utils/log"
)

const (
	DefaultKeycloakPort    = 8080
	DefaultKeycloakVersion = "26.0.4"

	keycloakImageRepository = "quay.io/keycloak/keycloak"
	keycloakContainerName   = "keycloak-keycloakify"
)

type StartKeycloakCommand struct {
	buildContext      *project.BuildContext
	keycloakVersion   string
	port              int
	realmJsonFilePath string
}

func NewStartKeycloakCommand() *StartKeycloakCommand {
	return &StartKeycloakCommand{}
}

func (skc *StartKeycloakCommand) SetBuildContext(buildContext *project.BuildContext) *StartKeycloakCommand {
	skc.buildContext = buildContext
	return skc
}

func (skc *StartKeycloakCommand) SetKeycloakVersion(keycloakVersion string) *StartKeycloakCommand {
	skc.keycloakVersion = keycloakVersion
	return skc
}

func (skc *StartKeycloakCommand) SetPort(port int) *StartKeycloakCommand {
	skc.port = port
	return skc
}

func (skc *StartKeycloakCommand) SetRealmJsonFilePath(realmJsonFilePath string) *StartKeycloakCommand {
	skc.realmJsonFilePath = realmJsonFilePath
	return skc
}

func (skc *StartKeycloakCommand) CommandName() string {
	return "start-keycloak"
}

func (skc *StartKeycloakCommand) Run() error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker is required to run the Keycloak testing container: %w", err)
	}
	keycloakVersion := skc.keycloakVersion
	coreutils.SetIfEmpty(&keycloakVersion, DefaultKeycloakVersion)

	dockerArgs := skc.getDockerRunArgs(keycloakVersion)
	log.Info("Starting Keycloak ", keycloakVersion, " on http://localhost:", skc.port)
	log.Debug("docker ", dockerArgs)

	cmd := exec.Command("docker", dockerArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return coreutils.ConvertExitCodeError(cmd.Run())
}

func (skc *StartKeycloakCommand) getDockerRunArgs(keycloakVersion string) []string {
	dockerArgs := []string{
		"run",
		"--rm",
		"--name", keycloakContainerName,
		"-p", strconv.Itoa(skc.port) + ":8080",
		"-e", "KC_BOOTSTRAP_ADMIN_USERNAME=admin",
		"-e", "KC_BOOTSTRAP_ADMIN_PASSWORD=admin",
		"-v", skc.buildContext.BuildDirPath + ":/opt/keycloak/providers/keycloakify-theme",
	}
	if skc.realmJsonFilePath != "" {
		dockerArgs = append(dockerArgs, "-v", skc.realmJsonFilePath+":/opt/keycloak/data/import/realm.json")
	}
	dockerArgs = append(dockerArgs, keycloakImageRepository+":"+keycloakVersion, "start-dev")
	if skc.realmJsonFilePath != "" {
		dockerArgs = append(dockerArgs, "--import-realm")
	}
	return dockerArgs
}

// A keycloak version is valid when it is absent, or parses as a strict
// major.minor.patch semver (pre-release and build metadata allowed).
// A value that reads as a plain number, like "26" or "26.0", is rejected.
func isValidKeycloakVersion(rawVersion string) bool {
	if rawVersion == "" {
		return true
	}
	if _, err := strconv.ParseFloat(rawVersion, 64); err == nil {
		return false
	}
	_, err := semver.StrictNewVersion(rawVersion)
	return err == nil
}

func assertValidKeycloakVersion(rawVersion string) {
	if isValidKeycloakVersion(rawVersion) {
		return
	}
	fmt.Println(coreutils.PrintRed("Invalid Keycloak version: " + rawVersion))
	fmt.Println(coreutils.PrintRed("It should be a valid semver version example: " + DefaultKeycloakVersion))
	os.Exit(coreutils.ExitCodeError.Code)
}
