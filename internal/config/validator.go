package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the .env schema version when one is declared.
// Every other variable has a default, so nothing else is required.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return nil
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like unknown log formats)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("%s is not set - consider adding it to your .env file (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion))
	}

	if format := os.Getenv(EnvLogFormat); format != "" {
		switch strings.ToLower(format) {
		case "json", "text":
		default:
			warnings = append(warnings, fmt.Sprintf("%s %q is not recognised - falling back to text", EnvLogFormat, format))
		}
	}

	return warnings, nil
}
