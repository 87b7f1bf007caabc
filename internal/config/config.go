// Package config holds run settings and their validation for dayslot.
//
// There is no configuration file: a Configuration starts from
// DefaultConfiguration and is adjusted by command-line flags.
package config

import (
	"fmt"

	"github.com/spf13/afero"

	"dayslot/internal/thumbnail"
	"dayslot/internal/watcher"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an invalid configuration.
type ConfigError struct {
	Type    ConfigErrorType
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case ValidationError:
		if e.Field != "" {
			return fmt.Sprintf("configuration validation error: %s: %s", e.Field, e.Message)
		}
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// DefaultMediaExtension is the extension of the files that get renamed.
const DefaultMediaExtension = ".mp4"

// Configuration holds all settings for a dayslot run.
type Configuration struct {
	Directory           string               // Directory whose files are renamed
	MediaExtension      string               // Extension of candidate files, matched case-insensitively
	ThumbnailExtensions []string             // Image extensions that exempt a file, matched case-sensitively
	Verbose             bool                 // Print a line for every file
	Watch               *watcher.WatchConfig // Settings for watch mode
}

// DefaultConfiguration returns a Configuration for the current directory.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Directory:           ".",
		MediaExtension:      DefaultMediaExtension,
		ThumbnailExtensions: thumbnail.DefaultExtensions(),
		Watch:               watcher.DefaultWatchConfig(),
	}
}

// Validate runs ValidateConfig and returns the first error as a *ConfigError.
// Warnings never fail validation.
func (c *Configuration) Validate(fs afero.Fs) error {
	result := ValidateConfig(fs, c)
	if result.Valid {
		return nil
	}
	first := result.Errors[0]
	return &ConfigError{
		Type:    ValidationError,
		Field:   first.Field,
		Message: first.Message,
	}
}
