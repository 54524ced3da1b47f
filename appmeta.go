package appmeta

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/appmeta/appmeta/internal/domain"
	"github.com/appmeta/appmeta/internal/extractor"
	"github.com/appmeta/appmeta/internal/workspace"
)

// Request describes one extraction run: the source package, an
// optional format override, an optional icon-output path, and an
// optional scratch-root override.
type Request = domain.Request

// Metadata is the extraction result. String fields are empty when the
// package does not declare them.
type Metadata = domain.Metadata

// Parse extracts build metadata from the package file named by
// req.Path, dispatching on the resolved format. When req.IconPath is
// set and the package carries a usable icon, the icon is written there
// as a standard PNG.
func Parse(req Request, opts ...Option) (*Metadata, error) {
	return ParseContext(context.Background(), req, opts...)
}

// ParseContext is Parse with a caller-supplied context. The context is
// consulted between pipeline stages; a stage is never interrupted
// mid-flight, so callers wanting a hard timeout wrap the call.
func ParseContext(ctx context.Context, req Request, opts ...Option) (*Metadata, error) {
	s := newSettings(opts)

	format := domain.Detect(req.Format, req.Path)
	if err := validate(req, format); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ws := workspace.New(req.ScratchDir, s.logger)
	defer ws.Destroy()

	md, err := extractor.ForFormat(format).Extract(ctx, req, ws)
	if err != nil {
		return nil, err
	}

	md.Format = format
	if err := fingerprint(req.Path, md); err != nil {
		return nil, &domain.ParseError{Path: req.Path, Stage: "fingerprint", Err: err}
	}

	return md, nil
}

// fingerprint records the source file's size and SHA-256 digest.
func fingerprint(path string, md *Metadata) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	md.Size = fi.Size()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	md.SHA256 = hex.EncodeToString(h.Sum(nil))

	return nil
}
