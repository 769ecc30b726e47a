// Package constants provides named constants used throughout the pizzeria codebase.
package constants

// Presentation constants
const (
	// Currency is the suffix printed after every price on menus and receipts.
	Currency = "AUD"

	// NarrationRuleWidth is the width of the dashed rule printed before
	// each pizza's preparation narration.
	NarrationRuleWidth = 30

	// MaxInputLineLen is the longest console answer accepted, in bytes.
	// Longer lines are read as an empty answer.
	MaxInputLineLen = 4096
)

// Configuration locations
const (
	// ConfigDirName is the directory under the user's home that holds
	// config.yaml.
	ConfigDirName = ".pizzeria"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"
)

// Environment variable overrides
const (
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "PIZZERIA_LOG_LEVEL"

	// EnvCatalogPath overrides catalog.path.
	EnvCatalogPath = "PIZZERIA_CATALOG"
)
