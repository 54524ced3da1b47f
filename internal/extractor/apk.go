package extractor

import (
	"context"
	"image"
	"strconv"

	"github.com/shogo82148/androidbinary"
	"github.com/shogo82148/androidbinary/apk"

	"github.com/appmeta/appmeta/internal/domain"
	"github.com/appmeta/appmeta/internal/imaging"
	"github.com/appmeta/appmeta/internal/workspace"
)

// iconDensities is the density ladder consulted when resolving the
// icon resource: xxxhdpi, xxhdpi, xhdpi, hdpi, mdpi.
var iconDensities = []uint16{640, 480, 320, 240, 160}

// androidPackage is the slice of *apk.Apk the extractor reads: the
// decoded manifest plus resource resolution for the label and icon.
type androidPackage interface {
	Close() error
	Manifest() apk.Manifest
	Label(config *androidbinary.ResTableConfig) (string, error)
	Icon(config *androidbinary.ResTableConfig) (image.Image, error)
}

// APKExtractor reads metadata from Android packages. The binary
// manifest and resource table are decoded straight from the package;
// no staging copy is needed, so the workspace stays untouched.
type APKExtractor struct {
	open func(path string) (androidPackage, error)
}

func NewAPK() *APKExtractor {
	return &APKExtractor{
		open: func(path string) (androidPackage, error) {
			return apk.OpenFile(path)
		},
	}
}

func (ae *APKExtractor) Extract(ctx context.Context, req domain.Request, _ *workspace.Workspace) (*domain.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pkg, err := ae.open(req.Path)
	if err != nil {
		return nil, &domain.ParseError{Path: req.Path, Stage: "open package", Err: err}
	}
	defer pkg.Close()

	md := metadataFromManifest(pkg)

	if req.IconPath != "" {
		if icon := bestIcon(pkg); icon != nil {
			if err := imaging.EncodePNG(icon, req.IconPath); err != nil {
				return nil, &domain.ParseError{Path: req.Path, Stage: "write icon", Err: err}
			}
			md.IconPath = req.IconPath
		}
	}

	return md, nil
}

// metadataFromManifest maps the decoded manifest onto the metadata
// record. Every field is optional: an attribute the manifest omits, or
// a value that fails to resolve, stays absent.
func metadataFromManifest(pkg androidPackage) *domain.Metadata {
	manifest := pkg.Manifest()

	md := &domain.Metadata{}
	if name, err := manifest.Package.String(); err == nil {
		md.BundleID = name
	}
	if ver, err := manifest.VersionName.String(); err == nil {
		md.Version = ver
	}
	if code, err := manifest.VersionCode.Int32(); err == nil && code != 0 {
		md.Build = strconv.FormatInt(int64(code), 10)
	}
	if min, err := manifest.SDK.Min.Int32(); err == nil && min != 0 {
		md.MinOSVersion = strconv.FormatInt(int64(min), 10)
	}

	// The label is a resource reference. The resolver returns the best
	// match for the requested configuration or nothing; further matches
	// are not disambiguated.
	if label, err := pkg.Label(nil); err == nil {
		md.Name = label
	}

	return md
}

// bestIcon resolves the icon resource across the density ladder and
// keeps the widest raster image. Vector-only icons resolve to nil.
func bestIcon(pkg androidPackage) image.Image {
	var (
		best      image.Image
		bestWidth int
	)
	for _, density := range iconDensities {
		icon, err := pkg.Icon(&androidbinary.ResTableConfig{Density: density})
		if err != nil || icon == nil {
			continue
		}
		if w := icon.Bounds().Dx(); w > bestWidth {
			best = icon
			bestWidth = w
		}
	}

	if icon, err := pkg.Icon(nil); err == nil && icon != nil {
		if icon.Bounds().Dx() > bestWidth {
			best = icon
		}
	}

	return best
}
