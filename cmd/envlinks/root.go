package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/nestoca/envlinks/internal/config"
)

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envlinks",
		Short: "Rewrite localhost links into links to deployed environments",
		Long: `Rewrite localhost links found in text, such as pull request descriptions, into links to deployed environments.

Each http://localhost URL becomes a link to the first configured environment, followed by links to the other
environments and a Development link pointing back at the original localhost URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			return checkMinVersion(version, cfg.MinVersion)
		},
	}

	cmd.PersistentFlags().String("config-dir", "", "Directory containing .envlinksrc config file (defaults to current directory, then home directory)")

	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core commands"})
	cmd.AddCommand(NewTransformCmd())
	cmd.AddCommand(NewPRCmd())
	cmd.AddCommand(NewEnvironmentsCmd())
	cmd.AddCommand(NewDiagnoseCmd(version))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

// checkMinVersion fails when version is a semantic version older than minVersion. Development builds are not checked.
func checkMinVersion(version, minVersion string) error {
	if minVersion == "" || !semver.IsValid(version) {
		return nil
	}
	if semver.Compare(version, minVersion) < 0 {
		return fmt.Errorf("current version %q is less than required minimum version %q. Please update envlinks", version, minVersion)
	}
	return nil
}
