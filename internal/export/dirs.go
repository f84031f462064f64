package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/bloggerposts/internal/output"
)

// EnsureDir creates dir and any missing parents. An empty dir means the
// current directory and is left alone.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewOutputError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold the file at path.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}
