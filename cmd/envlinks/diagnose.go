package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/diagnostics"
	"github.com/nestoca/envlinks/internal/github"
)

func NewDiagnoseCmd(version string) *cobra.Command {
	var skipGitHub bool

	cmd := &cobra.Command{
		Use:     "diagnose",
		Aliases: []string{"diag"},
		Short:   "Diagnose your envlinks installation",
		Long:    "Diagnose your envlinks installation, including the envlinks binary, configured environments, the gh CLI and access to GitHub pull requests.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			var authenticate func(context.Context) error
			if !skipGitHub {
				provider := github.NewPullRequestProvider(".",
					github.WithRepository(cfg.Repository),
					github.WithToken(githubToken()),
				)
				authenticate = provider.EnsureInstalledAndAuthenticated
			}

			report := diagnostics.Evaluate(cmd.Context(), version, cfg, authenticate)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report)
			return err
		},
	}

	cmd.Flags().BoolVar(&skipGitHub, "skip-github", false, "Skip checking access to GitHub pull requests")

	return cmd
}
