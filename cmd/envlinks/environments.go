package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nestoca/envlinks/internal/config"
	"github.com/nestoca/envlinks/internal/links"
)

func NewEnvironmentsCmd() *cobra.Command {
	var environmentsJSON string

	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"environment", "envs", "env"},
		Short:   "List environments links are generated for",
		Long: `List environments links are generated for, in order.

The first environment is the default one, the others are listed as alternates, followed by the Development
environment pointing back at the original localhost URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			environments, err := cfg.ResolveEnvironments(environmentsJSON)
			if err != nil {
				return err
			}

			if cfg.FilePath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", cfg.FilePath)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), links.FormatEnvironmentsTable(environments))
			return err
		},
	}

	cmd.Flags().StringVarP(&environmentsJSON, "environments", "e", "", "JSON object of environment names to hosts, the first one being the default")

	return cmd
}
