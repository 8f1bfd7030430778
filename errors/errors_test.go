package errors_test

import (
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/testassets/testassets/errors"
)

var _ = Describe("error taxonomy", func() {
	It("names the asset in a hash format error", func() {
		err := &errors.HashFormatError{Name: "a.bin", Hash: "xyz"}
		Expect(err).To(MatchError(`asset a.bin: malformed sha256 hash "xyz"`))
	})

	It("names the asset and URL in a download error", func() {
		err := &errors.DownloadError{
			Name: "a.bin",
			URL:  "https://example.com/a.bin",
			Err:  fmt.Errorf("connection refused"),
		}
		Expect(err).To(MatchError("asset a.bin: downloading https://example.com/a.bin: connection refused"))
		Expect(err.Unwrap()).To(MatchError("connection refused"))
	})

	It("shows both digests in an integrity error", func() {
		err := &errors.IntegrityError{Name: "a.bin", Expected: "aaaa", Actual: "bbbb"}
		Expect(err).To(MatchError("asset a.bin: sha256 mismatch: expected aaaa, got bbbb"))
	})

	It("names the path in a storage error", func() {
		err := &errors.StorageError{Path: "/out/a.bin", Err: fmt.Errorf("permission denied")}
		Expect(err).To(MatchError("asset file /out/a.bin: permission denied"))
		Expect(err.Unwrap()).To(MatchError("permission denied"))
	})
})
