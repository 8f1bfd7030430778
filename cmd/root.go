package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testassets/testassets/cmd/catalog"
	"github.com/testassets/testassets/cmd/download"
	"github.com/testassets/testassets/cmd/verify"
	"github.com/testassets/testassets/cmd/version"
)

type UI interface {
	io.Writer
	Say(message string, args ...interface{})
}

func NewRoot(ui UI, buildVersion string) *cobra.Command {
	root := &cobra.Command{
		Use:   "test-assets",
		Short: "Download and verify test fixture assets declared in a manifest",
	}
	root.PersistentFlags().Bool("help", false, "")
	root.PersistentFlags().Lookup("help").Hidden = true
	root.SilenceUsage = true
	root.SilenceErrors = true

	usageTemplate := strings.Replace(root.UsageTemplate(), "\n"+`Use "{{.CommandPath}} [command] --help" for more information about a command.`, "", -1)
	root.SetUsageTemplate(usageTemplate)

	root.AddCommand((&download.Download{UI: ui}).Cmd())
	root.AddCommand((&verify.Verify{UI: ui}).Cmd())
	root.AddCommand((&catalog.Catalog{UI: ui}).Cmd())
	root.AddCommand((&version.Version{UI: ui, Version: buildVersion}).Cmd())

	return root
}
