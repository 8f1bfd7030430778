package asset

import "strings"

// Asset declares a single test fixture: where it lives on disk relative
// to the cache directory, the sha256 it must hash to, and where to fetch
// it from when the local copy is missing or wrong.
type Asset struct {
	Name   string `json:"filename"`
	SHA256 string `json:"hash"`
	URL    string `json:"url"`
}

type Catalog struct {
	Items []Asset
}

// Lookup returns the asset with the given name, or nil.
func (c *Catalog) Lookup(name string) *Asset {
	for i := range c.Items {
		if c.Items[i].Name == name {
			return &c.Items[i]
		}
	}
	return nil
}

// Filter returns the catalog restricted to assets whose name contains
// the given substring. An empty substring keeps everything.
func (c *Catalog) Filter(substr string) *Catalog {
	var copy Catalog

	for _, item := range c.Items {
		if strings.Contains(item.Name, substr) {
			copy.Items = append(copy.Items, item)
		}
	}

	return &copy
}
