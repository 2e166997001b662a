package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = ".flakefmt.yaml"

	// DefaultIndent is the number of spaces per indent level
	DefaultIndent = 2

	// ConfigEnvVar names the environment variable holding the config path
	ConfigEnvVar = "FLAKEFMT_CONFIG"
)

// DefaultExtensions are the file extensions formatted when walking directories
var DefaultExtensions = []string{".sql"}
