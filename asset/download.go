package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/testassets/testassets/asset/progress"
	"github.com/testassets/testassets/asset/retry"
	"github.com/testassets/testassets/errors"
)

// Downloader fetches one asset at a time: GET with retry and backoff,
// digest verification, then an atomic write to the target path. The
// target file is never touched until the bytes have verified.
type Downloader struct {
	// Client issues the GETs. Nil means http.DefaultClient; per-request
	// timeouts belong to the client, not the retry policy.
	Client *http.Client

	Policy retry.Policy

	// Progress, when set, receives byte counts for the in-flight
	// response body.
	Progress *progress.Progress

	// Log, when set, receives retry notices.
	Log io.Writer
}

// Fetch downloads a into path. Transient failures (connection errors,
// non-2xx statuses, truncated bodies) are retried per the policy; a
// digest mismatch is terminal on the first response, since re-requesting
// the same URL cannot fix a wrong declaration.
func (d *Downloader) Fetch(a Asset, path string) error {
	var body []byte

	err := retry.Retry(func() error {
		b, err := d.get(a)
		if err != nil {
			return err
		}
		body = b
		return nil
	}, d.Policy.Retryable(d.Log))

	if err != nil {
		return &errors.DownloadError{Name: a.Name, URL: a.URL, Err: err}
	}

	if !Verify(body, a.SHA256) {
		return &errors.IntegrityError{
			Name:     a.Name,
			Expected: strings.ToLower(a.SHA256),
			Actual:   DigestHex(body),
		}
	}

	return writeFile(path, body)
}

func (d *Downloader) get(a Asset) ([]byte, error) {
	parsed, err := url.Parse(a.URL)
	if err == nil && parsed.Scheme == "file" {
		return os.ReadFile(parsed.Path)
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(a.URL)
	if err != nil {
		return nil, retry.WrapAsRetryable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, retry.WrapAsRetryable(fmt.Errorf("asset server returned status code %d", resp.StatusCode))
	}

	src := io.Reader(resp.Body)
	if d.Progress != nil {
		d.Progress.Start(a.Name, resp.ContentLength)
		defer d.Progress.End()
		src = io.TeeReader(resp.Body, d.Progress)
	}

	body, err := io.ReadAll(src)
	if err != nil {
		return nil, retry.WrapAsRetryable(err)
	}
	return body, nil
}

// writeFile persists body at path via a temp file and rename, so a
// failed write never leaves a partial file where a valid one is
// expected.
func writeFile(path string, body []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &errors.StorageError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return &errors.StorageError{Path: path, Err: err}
	}

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &errors.StorageError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &errors.StorageError{Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return &errors.StorageError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &errors.StorageError{Path: path, Err: err}
	}
	return nil
}
