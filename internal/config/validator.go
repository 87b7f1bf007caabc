package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ValidationSeverity represents the severity of a validation issue.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// ConfigValidationError represents a single validation issue.
type ConfigValidationError struct {
	Field    string             // Config field with issue (e.g., "thumbnailExtensions[1]")
	Message  string             // Human-readable description
	Severity ValidationSeverity // "error" or "warning"
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ConfigValidationError
	Warnings []ConfigValidationError
	Valid    bool // True if no errors (warnings OK)
}

func (r *ValidationResult) add(issues []ConfigValidationError) {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			r.Errors = append(r.Errors, issue)
		} else {
			r.Warnings = append(r.Warnings, issue)
		}
	}
}

// ValidateConfig checks the configuration and returns all findings.
func ValidateConfig(fs afero.Fs, cfg *Configuration) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ConfigValidationError{},
		Warnings: []ConfigValidationError{},
	}

	result.add(ValidateDirectory(fs, cfg))
	result.add(ValidateExtensions(cfg))
	result.add(ValidateWatch(cfg))

	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateDirectory checks that the working directory exists and is a directory.
func ValidateDirectory(fs afero.Fs, cfg *Configuration) []ConfigValidationError {
	if cfg.Directory == "" {
		return []ConfigValidationError{{
			Field:    "directory",
			Message:  "directory cannot be empty",
			Severity: SeverityError,
		}}
	}

	info, err := fs.Stat(cfg.Directory)
	if err != nil {
		msg := "error accessing directory: " + err.Error()
		if os.IsNotExist(err) {
			msg = "directory does not exist: " + cfg.Directory
		} else if os.IsPermission(err) {
			msg = "directory is not accessible: " + cfg.Directory
		}
		return []ConfigValidationError{{Field: "directory", Message: msg, Severity: SeverityError}}
	}

	if !info.IsDir() {
		return []ConfigValidationError{{
			Field:    "directory",
			Message:  "path is not a directory: " + cfg.Directory,
			Severity: SeverityError,
		}}
	}

	return nil
}

// ValidateExtensions checks the media and thumbnail extensions.
func ValidateExtensions(cfg *Configuration) []ConfigValidationError {
	var issues []ConfigValidationError

	if msg := checkExtension(cfg.MediaExtension); msg != "" {
		issues = append(issues, ConfigValidationError{
			Field:    "mediaExtension",
			Message:  msg,
			Severity: SeverityError,
		})
	} else if !strings.EqualFold(cfg.MediaExtension, DefaultMediaExtension) {
		issues = append(issues, ConfigValidationError{
			Field:    "mediaExtension",
			Message:  "non-default media extension: " + cfg.MediaExtension,
			Severity: SeverityWarning,
		})
	}

	if len(cfg.ThumbnailExtensions) == 0 {
		issues = append(issues, ConfigValidationError{
			Field:    "thumbnailExtensions",
			Message:  "no thumbnail extensions: every dated file is eligible for renaming",
			Severity: SeverityWarning,
		})
	}

	seen := make(map[string]int)
	for i, ext := range cfg.ThumbnailExtensions {
		field := formatField("thumbnailExtensions", i)
		if msg := checkExtension(ext); msg != "" {
			issues = append(issues, ConfigValidationError{Field: field, Message: msg, Severity: SeverityError})
			continue
		}
		if strings.EqualFold(ext, cfg.MediaExtension) {
			issues = append(issues, ConfigValidationError{
				Field:    field,
				Message:  "thumbnail extension equals the media extension: " + ext,
				Severity: SeverityError,
			})
		}
		if first, dup := seen[ext]; dup {
			issues = append(issues, ConfigValidationError{
				Field:    field,
				Message:  "duplicate thumbnail extension \"" + ext + "\" already at index " + strconv.Itoa(first),
				Severity: SeverityWarning,
			})
			continue
		}
		seen[ext] = i
	}

	return issues
}

// ValidateWatch checks that the watch timings are non-negative.
func ValidateWatch(cfg *Configuration) []ConfigValidationError {
	if cfg.Watch == nil {
		return nil
	}
	var issues []ConfigValidationError
	if cfg.Watch.DebounceSeconds < 0 {
		issues = append(issues, ConfigValidationError{
			Field:    "watch.debounceSeconds",
			Message:  "debounce must be a non-negative integer",
			Severity: SeverityError,
		})
	}
	if cfg.Watch.StableThresholdMs < 0 {
		issues = append(issues, ConfigValidationError{
			Field:    "watch.stableThresholdMs",
			Message:  "stability threshold must be a non-negative integer",
			Severity: SeverityError,
		})
	}
	return issues
}

// checkExtension returns a problem description, or "" for a usable extension.
func checkExtension(ext string) string {
	switch {
	case ext == "":
		return "extension cannot be empty"
	case !strings.HasPrefix(ext, "."):
		return "extension must start with '.': " + ext
	case len(ext) == 1:
		return "extension has no name after '.'"
	case strings.ContainsAny(ext, `/\*?[`):
		return "extension contains a path separator or glob character: " + ext
	}
	return ""
}

// formatField creates a field reference string for validation errors.
func formatField(name string, index int) string {
	return name + "[" + strconv.Itoa(index) + "]"
}
