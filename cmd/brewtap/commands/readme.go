package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brewtap/internal/app"
	"go.trai.ch/brewtap/internal/core/domain"
)

func (c *CLI) newReadmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Refresh the project table in a tap README",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tap, _ := cmd.Flags().GetString("tap")
			folder, _ := cmd.Flags().GetString("formula-folder")
			owner, _ := cmd.Flags().GetString("homebrew-owner")
			name, _ := cmd.Flags().GetString("homebrew-tap")
			_, _, err := c.app.UpdateReadme(cmd.Context(), app.ReadmeOptions{
				TapDir:        tap,
				FormulaFolder: folder,
				HomebrewOwner: owner,
				HomebrewTap:   name,
			})
			return err
		},
	}
	cmd.Flags().StringP("tap", "t", ".", "Path to the tap checkout")
	cmd.Flags().String("formula-folder", domain.DefaultFormulaFolder, "Folder holding the formulas inside the tap")
	cmd.Flags().String("homebrew-owner", "", "Owner of the tap, used in install commands")
	cmd.Flags().String("homebrew-tap", "", "Name of the tap repository, used in install commands")
	return cmd
}
