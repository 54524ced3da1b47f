package workspace

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"
)

// Workspace is the scratch directory for one extraction run. New picks
// the name without touching the filesystem; Create materializes the
// directory; Destroy removes it recursively. A Workspace that was never
// created destroys as a no-op.
type Workspace struct {
	dir    string
	logger *slog.Logger
}

// New allocates a workspace name under root. The name combines the
// current time at nanosecond resolution with a random numeric suffix,
// so concurrent runs sharing a scratch root pick distinct directories.
// An empty root means the platform temp directory.
func New(root string, logger *slog.Logger) *Workspace {
	if root == "" {
		root = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}

	name := fmt.Sprintf("appmeta-%d-%04d", time.Now().UnixNano(), rand.IntN(10000))

	return &Workspace{
		dir:    filepath.Join(root, name),
		logger: logger,
	}
}

// Dir returns the workspace path. The directory exists on disk only
// after Create has been called.
func (w *Workspace) Dir() string {
	return w.dir
}

// Create materializes the workspace directory.
func (w *Workspace) Create() error {
	return os.MkdirAll(w.dir, 0755)
}

// Destroy recursively deletes the workspace and everything in it.
// Deletion is best-effort: failures are logged, never returned, and a
// directory that was never created is a no-op.
func (w *Workspace) Destroy() {
	if err := os.RemoveAll(w.dir); err != nil {
		w.logger.Warn("failed to remove workspace", "dir", w.dir, "error", err)
	}
}
