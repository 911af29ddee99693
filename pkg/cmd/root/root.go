// Package root wires the query modes behind the pipewatch command
package root

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/pipewatch/cli/internal/credential"
	"github.com/pipewatch/cli/internal/errors"
	"github.com/pipewatch/cli/internal/identity"
	"github.com/pipewatch/cli/internal/job"
	"github.com/pipewatch/cli/internal/pipeline"
	"github.com/pipewatch/cli/pkg/cmd/factory"
	selftestCmd "github.com/pipewatch/cli/pkg/cmd/selftest"
	versionCmd "github.com/pipewatch/cli/pkg/cmd/version"
	"github.com/pipewatch/cli/pkg/output"
)

type rootOptions struct {
	authSmokeTest bool
	pipelineID    string
	projectSlug   string
	jobNumber     int
	tokenName     string
}

func NewCmdRoot(f *factory.Factory) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "pipewatch [flags]",
		Short: "Inspect CI pipelines from the command line",
		Long: heredoc.Doc(`
			Query a CI API for pipeline, workflow and job state and print a
			normalized summary. The API token is read from a file under the
			secrets directory and never leaves process memory.
		`),
		Example: heredoc.Doc(`
			# Verify the stored token works
			$ pipewatch --auth-smoke-test

			# Summarize the workflows and jobs of a pipeline
			$ pipewatch --pipeline-id 4f9a27ab-equals --format json

			# Look up one job by project and number
			$ pipewatch --project-slug gh/acme/widgets --job-number 123
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.authSmokeTest, "auth-smoke-test", false, "Check the stored token against the identity endpoint")
	cmd.Flags().StringVar(&opts.pipelineID, "pipeline-id", "", "Summarize the workflows and jobs of this pipeline")
	cmd.Flags().StringVar(&opts.projectSlug, "project-slug", "", "Project slug for a single job lookup")
	cmd.Flags().IntVar(&opts.jobNumber, "job-number", 0, "Job number for a single job lookup")
	cmd.Flags().StringVar(&opts.tokenName, "token-name", f.Config.TokenName(), "Name of the secret file holding the API token")
	output.AddFlags(cmd.Flags())

	cmd.MarkFlagsOneRequired("auth-smoke-test", "pipeline-id", "project-slug")
	cmd.MarkFlagsMutuallyExclusive("auth-smoke-test", "pipeline-id", "project-slug")
	cmd.MarkFlagsMutuallyExclusive("auth-smoke-test", "job-number")
	cmd.MarkFlagsMutuallyExclusive("pipeline-id", "job-number")
	cmd.MarkFlagsRequiredTogether("project-slug", "job-number")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUsageError(err, "", "run 'pipewatch --help' for usage")
	})

	cmd.AddCommand(versionCmd.NewCmdVersion(f))
	cmd.AddCommand(selftestCmd.NewCmdSelfTest(f))

	return cmd
}

func run(cmd *cobra.Command, f *factory.Factory, opts *rootOptions) error {
	format, err := output.GetFormat(cmd.Flags())
	if err != nil {
		return err
	}

	secret, err := credential.Load(f.Fs, f.Config.SecretsDir(), opts.tokenName)
	if err != nil {
		return err
	}
	defer secret.Clear()

	client := f.APIClient(secret.Value())

	var result output.Formatter
	switch {
	case opts.authSmokeTest:
		id, err := identity.Whoami(cmd.Context(), client)
		if err != nil {
			return err
		}
		result = *id
	case opts.pipelineID != "":
		summary, err := pipeline.Summarize(cmd.Context(), client, opts.pipelineID)
		if err != nil {
			return err
		}
		result = *summary
	default:
		lookup, err := job.Lookup(cmd.Context(), client, opts.projectSlug, opts.jobNumber)
		if err != nil {
			return err
		}
		result = *lookup
	}

	return output.Write(cmd.OutOrStdout(), result, format)
}
