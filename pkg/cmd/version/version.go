package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipewatch/cli/pkg/cmd/factory"
)

func NewCmdVersion(f *factory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:    "version",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pipewatch %s\n", f.Version)
		},
	}
}
