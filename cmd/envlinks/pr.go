package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nestoca/envlinks/internal/actions"
	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/github"
	"github.com/nestoca/envlinks/internal/pr/description"
)

func NewPRCmd() *cobra.Command {
	var environmentsJSON, repository string
	var dryRun, noPrompt, openInBrowser bool

	cmd := &cobra.Command{
		Use:     "pr [number|url|branch]",
		Aliases: []string{"pull-request"},
		Short:   "Rewrite localhost links of a pull request description",
		Long: `Rewrite localhost links of a GitHub pull request description in place, using the gh CLI.

The pull request is selected by given number, URL or branch. Otherwise, it is the pull request of the GitHub Actions
event that triggered the workflow or, outside of workflows, the pull request of the current branch.`,
		Example: `  envlinks pr
  envlinks pr 42 --dry-run
  envlinks pr feature/login --no-prompt --web`,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			environments, err := cfg.ResolveEnvironments(environmentsJSON)
			if err != nil {
				return err
			}

			if repository == "" {
				repository = cfg.Repository
			}

			var selector string
			if len(args) > 0 {
				selector = args[0]
			} else {
				event, err := actions.ReadEvent()
				if err != nil {
					return err
				}
				if event != nil {
					if event.PullRequest == nil {
						fmt.Fprintln(cmd.OutOrStdout(), "No pull request found.")
						return nil
					}
					selector = strconv.Itoa(event.PullRequest.Number)
					if repository == "" && event.Repository != nil {
						repository = event.Repository.FullName
					}
				}
			}

			if !term.IsTerminal(int(os.Stdin.Fd())) {
				noPrompt = true
			}

			updater := description.NewDefaultUpdater(".", cmd.OutOrStdout(),
				github.WithRepository(repository),
				github.WithToken(githubToken()),
			)

			return updater.Update(cmd.Context(), description.Params{
				Environments:  environments,
				PullRequest:   selector,
				Repository:    repository,
				DryRun:        dryRun,
				NoPrompt:      noPrompt,
				OpenInBrowser: openInBrowser,
			})
		},
	}

	cmd.Flags().StringVarP(&environmentsJSON, "environments", "e", "", "JSON object of environment names to hosts, the first one being the default")
	cmd.Flags().StringVarP(&repository, "repository", "r", "", "Repository (owner/repo) of the pull request")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only preview changes, without updating the pull request")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Update without previewing changes or asking for confirmation")
	cmd.Flags().BoolVarP(&openInBrowser, "web", "w", false, "Open the pull request in the browser once updated")

	return cmd
}

func githubToken() string {
	if token := actions.Input("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GITHUB_TOKEN")
}
