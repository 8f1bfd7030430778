package errors

import "fmt"

// HashFormatError reports a declared hash that is not a hex encoded
// sha256 digest. It is detected before any network activity.
type HashFormatError struct {
	Name string
	Hash string
}

func (e *HashFormatError) Error() string {
	return fmt.Sprintf("asset %s: malformed sha256 hash %q", e.Name, e.Hash)
}

// DownloadError reports a fetch that failed on every attempt.
type DownloadError struct {
	Name string
	URL  string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("asset %s: downloading %s: %v", e.Name, e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// IntegrityError reports downloaded bytes whose digest does not match
// the declared hash. It is never retried.
type IntegrityError struct {
	Name     string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("asset %s: sha256 mismatch: expected %s, got %s", e.Name, e.Expected, e.Actual)
}

// StorageError reports a filesystem failure while reading or writing an
// asset under the cache directory.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("asset file %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
