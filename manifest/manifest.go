// Package manifest reads the declarative asset manifest: a table of
// records keyed by an arbitrary name, each declaring a filename, its
// expected sha256, and the URL to fetch it from.
//
//	[test_assets.fixture_a]
//	filename = "a.bin"
//	hash = "<sha256 hex>"
//	url = "https://example.com/a.bin"
//
// Manifests ending in .yaml or .yml are parsed as YAML with the same
// shape; everything else is TOML.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/testassets/testassets/asset"
)

type Manifest struct {
	Assets map[string]Record `toml:"test_assets" yaml:"test_assets"`
}

type Record struct {
	Filename string `toml:"filename" yaml:"filename"`
	Hash     string `toml:"hash" yaml:"hash"`
	URL      string `toml:"url" yaml:"url"`
}

// Load parses the manifest at path into a catalog.
func Load(path string) (*asset.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &m)
	default:
		err = toml.Unmarshal(b, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %v", path, err)
	}

	return m.Catalog(path)
}

// Catalog converts the manifest into catalog order: sorted by manifest
// key, so repeated runs process assets in a stable order.
func (m *Manifest) Catalog(path string) (*asset.Catalog, error) {
	keys := make([]string, 0, len(m.Assets))
	for key := range m.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var clog asset.Catalog
	for _, key := range keys {
		r := m.Assets[key]
		if r.Filename == "" {
			return nil, fmt.Errorf("manifest %s: entry %q has no filename", path, key)
		}
		if r.URL == "" {
			return nil, fmt.Errorf("manifest %s: entry %q has no url", path, key)
		}
		clog.Items = append(clog.Items, asset.Asset{
			Name:   r.Filename,
			SHA256: r.Hash,
			URL:    r.URL,
		})
	}

	return &clog, nil
}
