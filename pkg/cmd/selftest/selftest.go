package selftest

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/pipewatch/cli/internal/credential"
	"github.com/pipewatch/cli/internal/errors"
	"github.com/pipewatch/cli/pkg/cmd/factory"
)

func NewCmdSelfTest(f *factory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:    "selftest",
		Hidden: true,
		Short:  "Verify the credential store rejects unsafe secret files",
		Long: heredoc.Doc(`
			Exercise the credential validation chain against a disposable
			directory: a missing file, an empty file and a symlinked file must
			all be rejected. No real secret is read and no value is printed.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks, err := credential.SelfTest(f.Fs)
			if err != nil {
				return errors.NewCredentialError(err, "self-test could not run")
			}

			fmt.Fprintln(cmd.OutOrStdout(), credential.Report(checks))

			for _, c := range checks {
				if !c.OK && !c.Skipped {
					return errors.NewCredentialError(nil, "credential store self-test failed")
				}
			}
			return nil
		},
	}
}
