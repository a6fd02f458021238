package common

import (
	"fmt"
	"slices"
)

// ValidateOutputFormat checks the requested format against the configured
// allow-list. An empty list means no restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if !slices.Contains(supportedFormats, format) {
		return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
			format, supportedFormats)
	}

	return nil
}

// GetSupportedFormats exposes the configured format allow-list, for flag
// completion.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
