// Package cache is the local store for downloaded resource payloads.
package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Manager handles the local content cache.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Path returns the cache path for a resource's payload.
// Layout: <baseDir>/<resourceID>/<filename>
func (m *Manager) Path(resourceID, filename string) string {
	return filepath.Join(m.baseDir, resourceID, filename)
}

// Exists reports whether the cached payload exists.
func (m *Manager) Exists(resourceID, filename string) bool {
	_, err := os.Stat(m.Path(resourceID, filename))
	return err == nil
}

// Store writes r to the cache path for the given resource via a temp
// file and rename, so a failed download never leaves a partial payload.
// Returns the final file path.
func (m *Manager) Store(resourceID, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(m.baseDir, resourceID)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	destPath := m.Path(resourceID, filename)
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing to cache: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

// Remove deletes one resource's cached payloads.
func (m *Manager) Remove(resourceID string) error {
	err := os.RemoveAll(filepath.Join(m.baseDir, resourceID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear deletes the whole cache.
func (m *Manager) Clear() error {
	err := os.RemoveAll(m.baseDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Info walks the cache and returns file count and total size.
func (m *Manager) Info() (files int, bytes int64, err error) {
	err = filepath.Walk(m.baseDir, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if !fi.IsDir() {
			files++
			bytes += fi.Size()
		}
		return nil
	})
	if os.IsNotExist(err) {
		return 0, 0, nil
	}
	return files, bytes, err
}
