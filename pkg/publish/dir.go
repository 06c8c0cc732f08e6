package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/htmlkit-dev/htmlkit/internal/errors"
)

// DirTarget publishes to a local directory. Useful for staging a site
// into a path served by another web server, and for testing publish
// runs without AWS access.
type DirTarget struct {
	dir string
}

// NewDirTarget creates a directory publish target.
func NewDirTarget(dir string) (*DirTarget, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E400").
			WithDetail("Cannot create target directory " + dir).
			Wrap(err)
	}
	return &DirTarget{dir: dir}, nil
}

// Put writes an object into the directory.
func (t *DirTarget) Put(ctx context.Context, key string, body io.Reader, meta FileMeta) error {
	path, err := t.keyPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// List returns the keys currently in the directory.
func (t *DirTarget) List(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.Walk(t.dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(t.dir, p)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Delete removes an object from the directory.
func (t *DirTarget) Delete(ctx context.Context, key string) error {
	path, err := t.keyPath(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// keyPath maps a site-relative key to a filesystem path, rejecting
// keys that would escape the target directory.
func (t *DirTarget) keyPath(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", errors.Newf(errors.CategoryPublish, "invalid key %q", key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "." || seg == ".." {
			return "", errors.Newf(errors.CategoryPublish, "invalid key %q", key)
		}
	}
	return filepath.Join(t.dir, filepath.FromSlash(key)), nil
}
