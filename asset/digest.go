package asset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// DigestHex returns the sha256 of b as a lowercase hex string.
func DigestHex(b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%x", sum)
}

// Verify reports whether b hashes to the expected hex digest. The
// expected value is lowercased before comparison.
func Verify(b []byte, expectedHex string) bool {
	return DigestHex(b) == strings.ToLower(expectedHex)
}

// FileDigestHex computes the sha256 of the file at path without loading
// it into memory.
func FileDigestHex(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ValidHash reports whether s is a well-formed hex encoded sha256
// digest: exactly twice the digest size and decodable.
func ValidHash(s string) bool {
	if len(s) != 2*sha256.Size {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
