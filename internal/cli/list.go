package cli

import (
	"fmt"

	"github.com/Freeeeeet/tutorcenter/internal/formatting"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var byMonth bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print sessions grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			st := env.state
			st.ListByMonth = byMonth

			groups, err := env.schedules.List(cmd.Context(), admin, st, env.now)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(w, "No sessions found")
				return nil
			}

			for _, g := range groups {
				fmt.Fprintf(w, "%s, %s\n", formatting.GetWeekdayName(g.Date.Weekday()), formatting.FormatDate(g.Date))
				for _, e := range g.Entries {
					fmt.Fprintf(w, "  %s  %s · %s · %s\n",
						formatting.FormatTimeRange(e.Start, e.End),
						e.Title,
						formatting.FormatPeople(e.Teachers),
						formatting.GetSessionStatusDisplay(e.Status).Text,
					)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byMonth, "by-month", false, "List the whole month instead of the week")
	return cmd
}
