package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brewtap/internal/app"
	"go.trai.ch/brewtap/internal/core/domain"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Generate the formula for the latest release and push it to the tap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			skipCommit, _ := cmd.Flags().GetBool("skip-commit")
			return c.app.Release(cmd.Context(), app.ReleaseOptions{
				ConfigPath: configPath,
				SkipCommit: skipCommit,
			})
		},
	}
	cmd.Flags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	cmd.Flags().Bool("skip-commit", false, "Generate the formula without publishing it")
	return cmd
}
