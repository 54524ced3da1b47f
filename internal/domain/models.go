package domain

// Request describes a single extraction run. It is a value object:
// build it once, hand it to the orchestrator, never mutate it.
type Request struct {
	// Path names the package file to read. Required.
	Path string

	// Format overrides detection. The zero value means the format is
	// inferred from the file extension.
	Format Format

	// IconPath, when non-empty, is where the representative icon is
	// written as a standard PNG. Empty means no icon output.
	IconPath string

	// ScratchDir overrides the scratch root used for staging. Empty
	// means the platform temp directory.
	ScratchDir string
}

// Metadata is the result of one extraction. The string fields mirror
// whatever the package declares; the empty string marks a field the
// package omitted.
type Metadata struct {
	Name         string `json:"name,omitempty"`
	Version      string `json:"version,omitempty"`
	Build        string `json:"build,omitempty"`
	BundleID     string `json:"bundle_id,omitempty"`
	MinOSVersion string `json:"min_os_version,omitempty"`

	Format Format `json:"format"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`

	// IconPath is where the icon was written, empty when none was.
	IconPath string `json:"icon_path,omitempty"`
}
