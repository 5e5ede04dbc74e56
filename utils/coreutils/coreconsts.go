package coreutils

const (
	// Resources bundled with the keycloakify npm distribution.
	KeycloakifyModuleDirName  = "keycloakify"
	NodeModulesDirName        = "node_modules"
	ResourcesDirName          = "res"
	PublicResourcesDirName    = "public"
	KeycloakResourcesDirName  = "keycloakify-dev-resources"
	PackageJsonFileName       = "package.json"
	KcGenFileName             = "kc.gen.tsx"
	DefaultBuildDirName       = "dist_keycloak"
	DefaultPublicDirName      = "public"
	DefaultThemeName          = "keycloakify"
	UiModuleNamespace         = "@keycloakify/"

	// Env
	LogLevel     = "KEYCLOAKIFY_LOG_LEVEL"
	LogTimestamp = "KEYCLOAKIFY_LOG_TIMESTAMP"
	CI           = "CI"
)
