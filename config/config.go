package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/testassets/testassets/asset"
	"github.com/testassets/testassets/manifest"
)

type Config struct {
	ManifestPath string
	AssetDir     string
	Catalog      *asset.Catalog
}

// NewConfig resolves a run's configuration. An empty dir falls back to
// TEST_ASSETS_DIR, then to "test-assets". The TEST_ASSETS_CATALOG env
// variable, when set, supplies the catalog as JSON and bypasses the
// manifest file entirely.
func NewConfig(manifestPath, dir string) (Config, error) {
	if dir == "" {
		dir = os.Getenv("TEST_ASSETS_DIR")
	}
	if dir == "" {
		dir = "test-assets"
	}

	catalog, err := catalog(manifestPath)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ManifestPath: manifestPath,
		AssetDir:     dir,
		Catalog:      catalog,
	}, nil
}

func catalog(manifestPath string) (*asset.Catalog, error) {
	override := os.Getenv("TEST_ASSETS_CATALOG")

	if override != "" {
		var items []asset.Asset
		if err := json.Unmarshal([]byte(override), &items); err != nil {
			return nil, fmt.Errorf("unable to parse TEST_ASSETS_CATALOG env variable: %v", err)
		}
		return &asset.Catalog{Items: items}, nil
	}

	return manifest.Load(manifestPath)
}
