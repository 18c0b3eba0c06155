// Package store is the persistent key-value boundary of the core: a
// simple get/set-with-JSON contract over a disk-backed store. The core
// writes snapshots fire-and-forget and treats load failure or absent
// data as "use the documented default", never as a fatal error.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the minimal JSON persistence contract used by the services.
type KV interface {
	// Get unmarshals the value at key into v. found is false when the
	// key is absent.
	Get(key string, v any) (found bool, err error)
	// Set marshals v and writes it at key.
	Set(key string, v any) error
	// Delete removes the value at key; deleting an absent key is not
	// an error.
	Delete(key string) error
}

// DiskStore implements KV on top of diskv, one JSON file per key.
// Keys are slash-separated paths such as "documents/P-1001".
type DiskStore struct {
	d *diskv.Diskv
}

// Open creates a DiskStore rooted at basePath, creating the directory
// as needed.
func Open(basePath string) (*DiskStore, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskStore) Get(key string, v any) (bool, error) {
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DiskStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) Delete(key string) error {
	if err := s.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}
