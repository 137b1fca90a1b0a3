package cli

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/render"
	"github.com/spf13/cobra"
)

func newMonthCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Render the month grid to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			grid, err := env.schedules.Month(cmd.Context(), admin, env.state, env.now)
			if err != nil {
				return err
			}

			img, err := render.MonthImage(grid)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			total := 0
			for _, day := range grid.Cells() {
				if day.InMonth {
					total += day.Total
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "📅 %s %d: %d weeks, %d sessions\n",
				formatting.GetMonthName(grid.MonthStart.Month()), grid.MonthStart.Year(), len(grid.Weeks), total)
			fmt.Fprintf(w, "✅ Saved %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "month.png", "Output PNG file")
	return cmd
}
