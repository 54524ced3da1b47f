package appmeta

import "github.com/appmeta/appmeta/internal/domain"

// Format identifies a supported package format.
type Format = domain.Format

const (
	// FormatUnknown means the format could not be resolved.
	FormatUnknown = domain.FormatUnknown

	// FormatIPA is the iOS application archive.
	FormatIPA = domain.FormatIPA

	// FormatAPK is the Android application package.
	FormatAPK = domain.FormatAPK
)

// ParseFormat maps a format tag ("ipa", "apk") to its Format.
func ParseFormat(s string) (Format, bool) {
	return domain.ParseFormat(s)
}

// Extensions lists the package file extensions recognized without an
// explicit override.
func Extensions() []string {
	return domain.Extensions()
}
