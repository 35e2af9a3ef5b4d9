// Package fs provides file-based storage for the generated site.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/wtlin/groomdir"
)

// Ensure SiteStore implements groomdir.SiteStore at compile time.
var _ groomdir.SiteStore = (*SiteStore)(nil)

// SiteStore implements groomdir.SiteStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit,
// so an aborted generation never leaves a half-written site behind.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Pages are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

// Dir returns the final output directory.
func (s *SiteStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Save writes a page beneath the temporary directory.
func (s *SiteStore) Save(ctx context.Context, page *groomdir.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := sitePath(page.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), rel)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, page.Content, 0644)
}

// Commit atomically replaces the output directory with the pending pages.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.Dir())
}

// Abort discards pending pages, leaving any previous output intact.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// sitePath validates a page path and converts it to the platform form.
// Paths must be relative and stay inside the site root.
func sitePath(p string) (string, error) {
	if p == "" {
		return "", groomdir.Errorf(groomdir.EINVALID, "page path required")
	}
	clean := path.Clean(p)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", groomdir.Errorf(groomdir.EINVALID, "page path %q escapes the site root", p)
	}
	return filepath.FromSlash(clean), nil
}
