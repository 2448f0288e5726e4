// Package store persists small client-state snapshots (filter selections,
// the catalog location fragment) under the configured base path.
package store

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known snapshot keys.
const (
	// KeyFilters holds the serialized catalog filter selections. The name
	// matches the key the web frontend uses in browser storage so the two
	// clients stay recognizably parallel.
	KeyFilters = "eventlist-filters"

	// KeyLocation holds the navigable-location fragment ("#<page>").
	KeyLocation = "location"
)

// Snapshots is the persistence contract for client-state blobs.
type Snapshots interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
}

// Load creates a Snapshots store backed by diskv using the provided config.
func Load(cfg Config) (Snapshots, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &snapshots{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type snapshots struct {
	d *diskv.Diskv
}

func (s *snapshots) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *snapshots) Write(key string, data []byte) error {
	return s.d.Write(key, data)
}

func (s *snapshots) Erase(key string) error {
	return s.d.Erase(key)
}
