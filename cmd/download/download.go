package download

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/testassets/testassets/asset"
	"github.com/testassets/testassets/asset/progress"
	"github.com/testassets/testassets/asset/retry"
	"github.com/testassets/testassets/config"
)

type UI interface {
	io.Writer
	Say(message string, args ...interface{})
}

type Download struct {
	UI UI

	filter    string
	force     bool
	attempts  int
	baseDelay time.Duration
}

func (d *Download) Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download MANIFEST [DIR]",
		Short: "Fetch all declared assets, skipping verified local copies",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  d.RunE,
	}
	cmd.Flags().StringVar(&d.filter, "filter", "", "only fetch assets whose filename contains this substring")
	cmd.Flags().BoolVar(&d.force, "force", false, "re-download even when a verified local copy exists")
	cmd.Flags().IntVar(&d.attempts, "attempts", 4, "download attempts per asset before giving up")
	cmd.Flags().DurationVar(&d.baseDelay, "base-delay", time.Second, "backoff before the first retry, doubled each attempt")
	return cmd
}

func (d *Download) RunE(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) == 2 {
		dir = args[1]
	}

	cfg, err := config.NewConfig(args[0], dir)
	if err != nil {
		return err
	}

	clog := cfg.Catalog
	if d.filter != "" {
		clog = clog.Filter(d.filter)
	}

	d.UI.Say("Downloading %d asset(s) to %s...", len(clog.Items), cfg.AssetDir)

	downloader := &asset.Downloader{
		Client:   &http.Client{Timeout: 5 * time.Minute},
		Policy:   retry.Policy{Attempts: d.attempts, BaseDelay: d.baseDelay},
		Progress: progress.New(d.UI),
		Log:      d.UI,
	}

	skipVerify := strings.ToLower(os.Getenv("TEST_ASSETS_SKIP_VERIFY"))

	cache := &asset.Cache{
		Dir:              cfg.AssetDir,
		DownloadFunc:     downloader.Fetch,
		Force:            d.force,
		SkipVerification: skipVerify == "true",
	}

	if err := cache.Sync(clog); err != nil {
		return err
	}

	d.UI.Say("Done.")
	return nil
}
