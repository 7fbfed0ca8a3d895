package config

import (
	"fmt"
	"os"

	"github.com/dkoosis/drill/internal/errors"
)

var validFormats = map[string]bool{
	"table": true,
	"json":  true,
	"yaml":  true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate rejects configurations the tool cannot honor. Defaults are
// applied before validation, so a zero Config never reaches here.
func Validate(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return errors.NewConfig(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("server.port %d is outside 1-65535", config.Server.Port),
		)
	}

	if config.Server.Host == "" {
		return errors.NewConfig(errors.ErrCodeConfigInvalid, "server.host must not be empty")
	}

	if !validFormats[config.Output.Format] {
		return errors.NewConfig(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("output.format %q is not one of table, json, yaml", config.Output.Format),
		)
	}

	if !validLogLevels[config.Logging.Level] {
		return errors.NewConfig(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", config.Logging.Level),
		)
	}

	if !validLogFormats[config.Logging.Format] {
		return errors.NewConfig(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("logging.format %q is not one of text, json", config.Logging.Format),
		)
	}

	for _, path := range config.Notes.ExtraPaths {
		info, err := os.Stat(path)
		if err != nil {
			return errors.NewConfig(
				errors.ErrCodeConfigInvalid,
				fmt.Sprintf("notes.extra_paths entry %q does not exist", path),
			)
		}
		if !info.IsDir() {
			return errors.NewConfig(
				errors.ErrCodeConfigInvalid,
				fmt.Sprintf("notes.extra_paths entry %q is not a directory", path),
			)
		}
	}

	return nil
}
