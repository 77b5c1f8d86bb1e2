// ABOUTME: Filesystem-backed ObjectStore for local development and tests
// ABOUTME: Keys map to file paths under a root directory
package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSStore implements ObjectStore on a local directory tree.
type FSStore struct {
	root string
}

// NewFSStore creates an FSStore rooted at dir, creating it if needed.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root %q: %w", dir, err)
	}
	return &FSStore{root: dir}, nil
}

// List returns keys (relative slash paths) under prefix, in lexical order.
func (f *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk store root: %w", err)
	}

	sort.Strings(keys)
	return keys, nil
}

// Get reads the file backing key.
func (f *FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	return data, nil
}

// Put writes body to the file backing key and returns a file:// URL.
func (f *FSStore) Put(ctx context.Context, key string, body io.Reader) (string, error) {
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create object %q: %w", key, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, body); err != nil {
		return "", fmt.Errorf("failed to write object %q: %w", key, err)
	}
	return "file://" + path, nil
}

func (f *FSStore) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}
