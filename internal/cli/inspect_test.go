package cli

import (
	"strings"
	"testing"

	"github.com/appmeta/appmeta"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRenderMetadata(t *testing.T) {
	color.NoColor = true

	md := &appmeta.Metadata{
		Name:         "Maps",
		Version:      "7.1.0",
		Build:        "42",
		BundleID:     "com.example.maps",
		MinOSVersion: "15.0",
		Format:       appmeta.FormatIPA,
		Size:         4096,
		SHA256:       strings.Repeat("ab", 32),
		IconPath:     "/tmp/maps.png",
	}

	out := renderMetadata("/downloads/Maps.ipa", md)

	assert.Contains(t, out, "✓ Maps-7.1.0 (ipa)")
	assert.Contains(t, out, "id: com.example.maps")
	assert.Contains(t, out, "build: 42")
	assert.Contains(t, out, "min os: 15.0")
	assert.Contains(t, out, "abababababab")
	assert.Contains(t, out, "icon: /tmp/maps.png")
}

func TestRenderMetadataAbsentFields(t *testing.T) {
	color.NoColor = true

	md := &appmeta.Metadata{Format: appmeta.FormatAPK, Size: 10}
	out := renderMetadata("/downloads/demo.apk", md)

	assert.Contains(t, out, "✓ demo.apk (apk)")
	assert.NotContains(t, out, "id:")
	assert.NotContains(t, out, "build:")
	assert.NotContains(t, out, "icon:")
}

func TestDefaultIconPath(t *testing.T) {
	assert.Equal(t, "Maps.png", defaultIconPath("/downloads/Maps.ipa"))
	assert.Equal(t, "demo.png", defaultIconPath("demo.apk"))
	assert.Equal(t, "bundle.png", defaultIconPath("bundle"))
}

func TestShortDigest(t *testing.T) {
	assert.Equal(t, "abababababab", shortDigest(strings.Repeat("ab", 32)))
	assert.Equal(t, "abcd", shortDigest("abcd"))
}
