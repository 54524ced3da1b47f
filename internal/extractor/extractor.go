package extractor

import (
	"context"

	"github.com/appmeta/appmeta/internal/domain"
	"github.com/appmeta/appmeta/internal/workspace"
)

// Extractor pulls build metadata out of one package format. Extract
// may stage files in ws; the caller owns ws and destroys it after the
// call regardless of outcome.
type Extractor interface {
	Extract(ctx context.Context, req domain.Request, ws *workspace.Workspace) (*domain.Metadata, error)
}

// ForFormat returns the extractor handling f, or nil when the format
// is not supported.
func ForFormat(f domain.Format) Extractor {
	switch f {
	case domain.FormatIPA:
		return NewIPA()
	case domain.FormatAPK:
		return NewAPK()
	}

	return nil
}
