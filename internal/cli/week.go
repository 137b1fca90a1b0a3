package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/Freeeeeet/tutorcenter/internal/render"
	"github.com/Freeeeeet/tutorcenter/internal/schedule"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newWeekCmd(opts *options) *cobra.Command {
	var (
		out  string
		open string
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Render the week grid to a PNG file",
		Example: `  schedulectl week --date 2024-01-03 --out week.png
  schedulectl week --json classes.json --mode evening
  schedulectl week --open 3f0c6a52-0d0e-4a3e-9d4c-6e1f2b7a8c90`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			grid, err := env.schedules.Week(cmd.Context(), admin, env.state, env.now)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if open != "" {
				return openCell(w, grid, open)
			}

			img, err := render.WeekImage(grid)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			printWeekSummary(w, grid)
			fmt.Fprintf(w, "✅ Saved %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "week.png", "Output PNG file")
	cmd.Flags().StringVar(&open, "open", "", "Print the card of a session on the grid instead of rendering")
	return cmd
}

func printWeekSummary(w io.Writer, grid schedule.WeekGrid) {
	first := grid.Days[0].Date
	last := grid.Days[len(grid.Days)-1].Date
	fmt.Fprintf(w, "📅 %s - %s\n", formatting.FormatDate(first), formatting.FormatDate(last))

	for _, c := range grid.Cells {
		day := grid.Days[c.DayIndex].Date
		fmt.Fprintf(w, "  %s %s  %-30s col %d/%d  %s\n",
			formatting.GetWeekdayShort(day.Weekday()),
			formatting.FormatTimeRange(c.Entry.Start, c.Entry.End),
			c.Entry.Title,
			c.Entry.ClassIndex+1,
			c.Entry.GroupSize,
			c.Decoration.Label,
		)
	}
	fmt.Fprintf(w, "📊 Sessions: %d, outside hours: %d\n", len(grid.Cells), grid.Hidden)
}

// openCell печатает карточку занятия с сетки
func openCell(w io.Writer, grid schedule.WeekGrid, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid --open: %w", err)
	}

	var found *schedule.Cell
	ok := grid.Open(id, func(_, sessionID uuid.UUID) {
		for i := range grid.Cells {
			if grid.Cells[i].Entry.SessionID == sessionID {
				found = &grid.Cells[i]
				return
			}
		}
	})
	if !ok || found == nil {
		return fmt.Errorf("session %s is not on this week's grid", id)
	}

	e := found.Entry
	fmt.Fprintf(w, "%s\n", e.Title)
	fmt.Fprintf(w, "  Subject:  %s\n", e.Subject)
	fmt.Fprintf(w, "  When:     %s %s (%s)\n", formatting.FormatDate(e.Start), formatting.FormatTimeRange(e.Start, e.End), e.Duration)
	fmt.Fprintf(w, "  Teachers: %s\n", formatting.FormatPeople(e.Teachers))
	fmt.Fprintf(w, "  Status:   %s\n", found.Decoration.Label)
	if e.ClassLink != "" {
		fmt.Fprintf(w, "  Link:     %s\n", e.ClassLink)
	}
	return nil
}
