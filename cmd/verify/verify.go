package verify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testassets/testassets/asset"
	"github.com/testassets/testassets/config"
)

type UI interface {
	Say(message string, args ...interface{})
}

// Verify reports the state of every declared asset against the local
// directory without touching the network.
type Verify struct {
	UI UI
}

func (v *Verify) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify MANIFEST [DIR]",
		Short: "Check local copies against their declared hashes",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  v.RunE,
	}
}

func (v *Verify) RunE(cmd *cobra.Command, args []string) error {
	dir := ""
	if len(args) == 2 {
		dir = args[1]
	}

	cfg, err := config.NewConfig(args[0], dir)
	if err != nil {
		return err
	}

	cache := &asset.Cache{Dir: cfg.AssetDir}
	statuses, err := cache.Scan(cfg.Catalog)
	if err != nil {
		return err
	}

	stale := 0
	for _, s := range statuses {
		v.UI.Say("%s: %s", s.Asset.Name, s.State)
		if s.State != asset.Valid {
			stale++
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d of %d assets need downloading", stale, len(statuses))
	}
	return nil
}
