package appmeta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/appmeta/appmeta/internal/domain"
)

// validate checks every request precondition and aggregates the
// violations, so a caller sees all of them at once. It has no side
// effects and runs before any extraction work.
func validate(req Request, format Format) error {
	var result *multierror.Error

	if _, err := os.Stat(req.Path); err != nil {
		result = multierror.Append(result, &domain.ArgumentError{
			Arg:    "path",
			Reason: fmt.Sprintf("source file does not exist: %s", req.Path),
		})
	}

	if format != FormatIPA && format != FormatAPK {
		result = multierror.Append(result, &domain.ArgumentError{
			Arg:    "format",
			Reason: fmt.Sprintf("unsupported package format: %s", filepath.Base(req.Path)),
		})
	}

	if req.IconPath != "" {
		if dir := filepath.Dir(req.IconPath); !dirExists(dir) {
			result = multierror.Append(result, &domain.ArgumentError{
				Arg:    "icon path",
				Reason: fmt.Sprintf("output directory does not exist: %s", dir),
			})
		}
	}

	if req.ScratchDir != "" && !dirExists(req.ScratchDir) {
		result = multierror.Append(result, &domain.ArgumentError{
			Arg:    "scratch dir",
			Reason: fmt.Sprintf("scratch directory does not exist: %s", req.ScratchDir),
		})
	}

	return result.ErrorOrNil()
}

func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
