package asset_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/testassets/testassets/asset"
	"github.com/testassets/testassets/asset/retry"
	taerrors "github.com/testassets/testassets/errors"
)

var _ = Describe("Downloader Fetch", func() {
	var (
		downloader *asset.Downloader
		server     *ghttp.Server
		tmpDir     string
		targetPath string
		subject    asset.Asset

		err error
	)

	BeforeEach(func() {
		server = ghttp.NewServer()

		tmpDir, _ = os.MkdirTemp("", "downloader")
		targetPath = filepath.Join(tmpDir, "target-asset")

		subject = asset.Asset{
			Name:   "target-asset",
			URL:    server.URL() + "/asset",
			SHA256: asset.DigestHex([]byte("some-content")),
		}

		downloader = &asset.Downloader{
			Policy: retry.Policy{Attempts: 1},
		}
	})

	AfterEach(func() {
		server.Close()
		os.RemoveAll(tmpDir)
	})

	JustBeforeEach(func() {
		err = downloader.Fetch(subject, targetPath)
	})

	Context("when downloading succeeds", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "some-content"))
		})

		It("issues a single GET for the asset", func() {
			Expect(server.ReceivedRequests()).To(HaveLen(1))
			req := server.ReceivedRequests()[0]
			Expect(req.Method).To(Equal("GET"))
			Expect(req.URL.Path).To(Equal("/asset"))
		})

		It("saves the verified content to the target path", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(targetPath).To(BeARegularFile())
			Expect(os.ReadFile(targetPath)).To(Equal([]byte("some-content")))
		})

		It("leaves no temp files behind", func() {
			entries, readErr := os.ReadDir(tmpDir)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})

	Context("when the target's parent directories do not exist", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "some-content"))
			targetPath = filepath.Join(tmpDir, "nested", "deeper", "target-asset")
		})

		It("creates them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(targetPath).To(BeARegularFile())
		})
	})

	Context("when the server fails transiently before succeeding", func() {
		BeforeEach(func() {
			downloader.Policy = retry.Policy{Attempts: 4}
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusInternalServerError, nil),
				ghttp.RespondWith(http.StatusServiceUnavailable, nil),
				ghttp.RespondWith(http.StatusOK, "some-content"),
			)
		})

		It("retries until the fetch succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(server.ReceivedRequests()).To(HaveLen(3))
			Expect(os.ReadFile(targetPath)).To(Equal([]byte("some-content")))
		})
	})

	Context("when the server fails on every attempt", func() {
		BeforeEach(func() {
			downloader.Policy = retry.Policy{Attempts: 3}
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusInternalServerError, nil),
				ghttp.RespondWith(http.StatusInternalServerError, nil),
				ghttp.RespondWith(http.StatusInternalServerError, nil),
			)
		})

		It("gives up after the attempt budget", func() {
			Expect(err).To(BeAssignableToTypeOf(&taerrors.DownloadError{}))
			Expect(err.Error()).To(ContainSubstring(subject.URL))
			Expect(err.Error()).To(ContainSubstring("status code 500"))
			Expect(server.ReceivedRequests()).To(HaveLen(3))
		})

		It("writes nothing to the filesystem", func() {
			Expect(targetPath).NotTo(BeAnExistingFile())
		})
	})

	Context("unable to connect to the asset server", func() {
		BeforeEach(func() {
			downloader.Policy = retry.Policy{Attempts: 2}
			subject.URL = "http://localhost:0/asset"
		})

		It("surfaces a download error naming the URL", func() {
			Expect(err).To(BeAssignableToTypeOf(&taerrors.DownloadError{}))
			Expect(err.Error()).To(ContainSubstring("http://localhost:0/asset"))
		})
	})

	Context("when the content does not match the declared hash", func() {
		BeforeEach(func() {
			downloader.Policy = retry.Policy{Attempts: 4}
			subject.SHA256 = strings.Repeat("0", 64)
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "real-content"))
		})

		It("fails immediately without retrying", func() {
			Expect(err).To(BeAssignableToTypeOf(&taerrors.IntegrityError{}))
			Expect(err.Error()).To(ContainSubstring("target-asset"))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		It("does not write the mismatched bytes", func() {
			Expect(targetPath).NotTo(BeAnExistingFile())
		})
	})

	Context("when a stale copy exists at the target", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "some-content"))
			Expect(os.WriteFile(targetPath, []byte("stale"), 0644)).To(Succeed())
		})

		It("replaces it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(os.ReadFile(targetPath)).To(Equal([]byte("some-content")))
		})
	})

	Context("when the URL uses the file scheme", func() {
		BeforeEach(func() {
			src := filepath.Join(tmpDir, "source-asset")
			Expect(os.WriteFile(src, []byte("local-content"), 0644)).To(Succeed())
			subject.URL = "file://" + src
			subject.SHA256 = asset.DigestHex([]byte("local-content"))
		})

		It("copies the file without touching the network", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(server.ReceivedRequests()).To(BeEmpty())
			Expect(os.ReadFile(targetPath)).To(Equal([]byte("local-content")))
		})
	})
})

var _ = Describe("Cache and Downloader together", func() {
	var (
		server *ghttp.Server
		tmpDir string
		clog   *asset.Catalog
		cache  *asset.Cache
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		tmpDir, _ = os.MkdirTemp("", "e2e")

		clog = &asset.Catalog{
			Items: []asset.Asset{{
				Name:   "a.bin",
				URL:    server.URL() + "/a.bin",
				SHA256: asset.DigestHex([]byte("hello")),
			}},
		}

		downloader := &asset.Downloader{Policy: retry.Policy{Attempts: 2}}
		cache = &asset.Cache{Dir: tmpDir, DownloadFunc: downloader.Fetch}
	})

	AfterEach(func() {
		server.Close()
		os.RemoveAll(tmpDir)
	})

	It("fetches once, then trusts the local copy with zero network calls", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "hello"))

		Expect(cache.Sync(clog)).To(Succeed())
		Expect(os.ReadFile(filepath.Join(tmpDir, "a.bin"))).To(Equal([]byte("hello")))
		Expect(server.ReceivedRequests()).To(HaveLen(1))

		// no handlers remain; any request would fail the test
		Expect(cache.Sync(clog)).To(Succeed())
		Expect(server.ReceivedRequests()).To(HaveLen(1))
	})
})
