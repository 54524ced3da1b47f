package extractor

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"howett.net/plist"

	"github.com/appmeta/appmeta/internal/archive"
	"github.com/appmeta/appmeta/internal/domain"
	"github.com/appmeta/appmeta/internal/imaging"
	"github.com/appmeta/appmeta/internal/workspace"
)

// defaultIconBase matches the icon set name Xcode assigns when the
// bundle does not declare one.
const defaultIconBase = "AppIcon"

// IPAExtractor reads metadata from iOS application archives. The
// archive is staged into the workspace, unpacked, and the embedded
// bundle's property list decoded.
type IPAExtractor struct{}

func NewIPA() *IPAExtractor {
	return &IPAExtractor{}
}

type bundleInfo struct {
	DisplayName string `plist:"CFBundleDisplayName"`
	Name        string `plist:"CFBundleName"`
	Version     string `plist:"CFBundleShortVersionString"`
	Build       string `plist:"CFBundleVersion"`
	Identifier  string `plist:"CFBundleIdentifier"`
	MinOS       string `plist:"MinimumOSVersion"`
	Icons       struct {
		Primary struct {
			IconName string `plist:"CFBundleIconName"`
		} `plist:"CFBundlePrimaryIcon"`
	} `plist:"CFBundleIcons"`
}

func (ie *IPAExtractor) Extract(ctx context.Context, req domain.Request, ws *workspace.Workspace) (*domain.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ie.stage(req.Path, ws); err != nil {
		return nil, &domain.ParseError{Path: req.Path, Stage: "extract archive", Err: err}
	}

	appDir, err := locateBundle(ws.Dir())
	if err != nil {
		return nil, &domain.ParseError{Path: req.Path, Stage: "locate bundle", Err: err}
	}

	info, err := readInfoPlist(appDir)
	if err != nil {
		return nil, &domain.ParseError{Path: req.Path, Stage: "decode property list", Err: err}
	}

	md := metadataFromBundle(info)

	if req.IconPath != "" {
		if icon := selectIcon(appDir, iconBase(info)); icon != "" {
			if err := imaging.FixPNG(icon, req.IconPath); err != nil {
				return nil, &domain.ParseError{Path: req.Path, Stage: "convert icon", Err: err}
			}
			md.IconPath = req.IconPath
		}
	}

	return md, nil
}

// stage copies the archive into the workspace and unpacks it there.
func (ie *IPAExtractor) stage(src string, ws *workspace.Workspace) error {
	if err := ws.Create(); err != nil {
		return err
	}

	staged := filepath.Join(ws.Dir(), filepath.Base(src))
	if err := copyFile(src, staged); err != nil {
		return err
	}

	return archive.Unzip(staged, ws.Dir())
}

// locateBundle finds the application bundle under Payload/. Multiple
// bundles are not disambiguated; the first match wins.
func locateBundle(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "Payload", "*.app"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("no application bundle under Payload/")
	}

	return matches[0], nil
}

func readInfoPlist(appDir string) (*bundleInfo, error) {
	data, err := os.ReadFile(filepath.Join(appDir, "Info.plist"))
	if err != nil {
		return nil, err
	}

	var info bundleInfo
	if _, err := plist.Unmarshal(data, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func metadataFromBundle(info *bundleInfo) *domain.Metadata {
	name := info.DisplayName
	if name == "" {
		name = info.Name
	}

	return &domain.Metadata{
		Name:         name,
		Version:      info.Version,
		Build:        info.Build,
		BundleID:     info.Identifier,
		MinOSVersion: info.MinOS,
	}
}

func iconBase(info *bundleInfo) string {
	if name := info.Icons.Primary.IconName; name != "" {
		return name
	}
	return defaultIconBase
}

// selectIcon picks the representative icon among {base}*.png in the
// bundle directory: the largest by byte size, ties going to the
// candidate enumerated last. App icon sets share a name prefix across
// display scales, and byte size is a proxy for resolution. Returns ""
// when nothing matches.
func selectIcon(appDir, base string) string {
	matches, err := filepath.Glob(filepath.Join(appDir, base+"*.png"))
	if err != nil {
		return ""
	}

	type candidate struct {
		path string
		size int64
	}
	var candidates []candidate
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: m, size: fi.Size()})
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].size < candidates[j].size
	})

	return candidates[len(candidates)-1].path
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
