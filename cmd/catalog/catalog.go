package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testassets/testassets/config"
)

type UI interface {
	Say(message string, args ...interface{})
}

type Catalog struct {
	UI UI
}

func (c *Catalog) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog MANIFEST",
		Short: "Print the parsed asset catalog as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  c.RunE,
	}
}

func (c *Catalog) RunE(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig(args[0], "")
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(cfg.Catalog.Items, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal catalog: %v", err)
	}
	c.UI.Say(string(bytes))
	return nil
}
