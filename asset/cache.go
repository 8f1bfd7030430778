package asset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/testassets/testassets/errors"
)

// Cache holds already-fetched assets under Dir and decides, per asset,
// whether the local copy can be trusted or a download is needed.
type Cache struct {
	Dir          string
	DownloadFunc func(a Asset, path string) error

	// Force skips the local check entirely: every asset is re-fetched
	// and overwritten.
	Force bool

	// SkipVerification trusts any existing file without hashing it.
	SkipVerification bool
}

type State int

const (
	Missing State = iota
	Corrupt
	Valid
)

func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	default:
		return "ok"
	}
}

// Status is the result of checking one catalog asset against the cache.
type Status struct {
	Asset Asset
	State State
}

// Sync brings the cache directory up to date with the catalog,
// sequentially and in catalog order. Each asset's declared hash is
// validated before any network activity for it; corrupt local copies
// are removed before re-fetching. The first terminal failure aborts the
// batch, leaving earlier successes on disk.
func (c *Cache) Sync(clog *Catalog) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return &errors.StorageError{Path: c.Dir, Err: err}
	}

	for _, a := range clog.Items {
		if !ValidHash(a.SHA256) {
			return &errors.HashFormatError{Name: a.Name, Hash: a.SHA256}
		}

		path := filepath.Join(c.Dir, a.Name)

		state := Missing
		if !c.Force {
			var err error
			state, err = c.check(path, a.SHA256)
			if err != nil {
				return err
			}
		}

		switch state {
		case Valid:
			continue
		case Corrupt:
			if err := os.Remove(path); err != nil {
				return &errors.StorageError{Path: path, Err: err}
			}
		}

		if err := c.DownloadFunc(a, path); err != nil {
			return err
		}
	}

	return nil
}

// Scan reports the state of every catalog asset without fetching
// anything. Malformed declared hashes surface as HashFormatError, like
// in Sync.
func (c *Cache) Scan(clog *Catalog) ([]Status, error) {
	var statuses []Status

	for _, a := range clog.Items {
		if !ValidHash(a.SHA256) {
			return nil, &errors.HashFormatError{Name: a.Name, Hash: a.SHA256}
		}

		state, err := c.check(filepath.Join(c.Dir, a.Name), a.SHA256)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, Status{Asset: a, State: state})
	}

	return statuses, nil
}

func (c *Cache) check(path, expectedHex string) (State, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Missing, nil
	}
	if err != nil {
		return Missing, &errors.StorageError{Path: path, Err: err}
	}

	if c.SkipVerification {
		return Valid, nil
	}

	sum, err := FileDigestHex(path)
	if err != nil {
		return Corrupt, &errors.StorageError{Path: path, Err: err}
	}
	if sum != strings.ToLower(expectedHex) {
		return Corrupt, nil
	}

	return Valid, nil
}
