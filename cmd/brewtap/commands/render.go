package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brewtap/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a formula from a manifest without contacting GitHub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			output, _ := cmd.Flags().GetString("output")
			return c.app.Render(cmd.Context(), app.RenderOptions{
				ManifestPath: manifest,
				OutputPath:   output,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("manifest", "m", "", "Path to the render manifest")
	cmd.Flags().StringP("output", "o", "", "Write the formula to this file instead of stdout")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
