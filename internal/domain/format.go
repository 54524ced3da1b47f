package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported package format.
type Format int

const (
	FormatUnknown Format = iota

	// FormatIPA is the iOS application archive: a ZIP file carrying a
	// Payload/<Name>.app bundle directory.
	FormatIPA

	// FormatAPK is the Android application package: a binary container
	// with a compiled manifest and resource table.
	FormatAPK
)

// Detect resolves the format for a source file. An explicit override
// wins; otherwise the file extension decides, case-insensitively.
func Detect(override Format, path string) Format {
	if override != FormatUnknown {
		return override
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ipa":
		return FormatIPA
	case ".apk":
		return FormatAPK
	}

	return FormatUnknown
}

// ParseFormat maps a format tag ("ipa", "apk") to its Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "ipa":
		return FormatIPA, true
	case "apk":
		return FormatAPK, true
	}

	return FormatUnknown, false
}

// Extensions lists the file extensions Detect recognizes.
func Extensions() []string {
	return []string{".ipa", ".apk"}
}

func (f Format) String() string {
	switch f {
	case FormatIPA:
		return "ipa"
	case FormatAPK:
		return "apk"
	}

	return "unknown"
}

// MarshalText renders the format tag, so JSON output carries "ipa" or
// "apk" instead of an integer.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
