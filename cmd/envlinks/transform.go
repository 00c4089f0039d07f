package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/envlinks"
	"github.com/nestoca/envlinks/internal/links"
	"github.com/nestoca/envlinks/internal/text"
)

func NewTransformCmd() *cobra.Command {
	var environmentsJSON, branch, repository string
	var number int
	var showDiff bool

	cmd := &cobra.Command{
		Use:     "transform [file]",
		Aliases: []string{"tx"},
		Short:   "Rewrite localhost links of given text",
		Long: `Rewrite localhost links of given file, or of standard input when no file is given, and print the result.

Environments are read from the --environments flag, the ENVIRONMENTS variable or the config file, in that order.
Pull request flags only provide data to host templates, such as https://pr-{{ .PullRequest.Number }}.example.com.`,
		Example: `  envlinks transform --environments '{"Staging":"https://staging.example.com","Production":"https://example.com"}' body.md
  gh pr view 42 --json body --jq .body | envlinks transform --number 42 --diff`,
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
			environments, err = links.RenderHosts(environments, links.TemplateData{
				PullRequest: links.PullRequest{Number: number, Branch: branch},
				Repository:  repository,
			})
			if err != nil {
				return err
			}

			name, body, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			result := envlinks.Transform(environments, body)

			if showDiff {
				diff := text.DiffColorized(
					text.File{Name: name, Content: body},
					text.File{Name: name + " (rewritten)", Content: result},
					1,
				)
				_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&environmentsJSON, "environments", "e", "", "JSON object of environment names to hosts, the first one being the default")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "Print a diff of the changes instead of the rewritten text")
	cmd.Flags().IntVarP(&number, "number", "n", 0, "Pull request number made available to host templates")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Pull request branch made available to host templates")
	cmd.Flags().StringVarP(&repository, "repository", "r", "", "Repository (owner/repo) made available to host templates")

	return cmd
}

func readInput(stdin io.Reader, args []string) (name, content string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading standard input: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}
