package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/storage"
	"hearth/internal/ui"
)

func newListCmd() *cobra.Command {
	var sortBy string
	var periodicity string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.HabitRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if periodicity != "" {
				p, err := engine.ParsePeriodicity(periodicity)
				if err != nil {
					return err
				}
				habits = engine.HabitsByPeriodicity(habits, p)
			}
			if err := sortHabits(habits, sortBy); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHouse, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet — `hearth add` creates one)"))
				return nil
			}

			now := time.Now().UTC()
			failing := map[int64]bool{}
			for _, h := range engine.CurrentlyFailing(habits, now) {
				failing[h.ID] = true
			}

			for _, h := range habits {
				mark := " "
				if failing[h.ID] {
					mark = ui.Bad.Render("!")
				}
				fmt.Fprintf(out, "%s %3d  %-24s %-8s %s %-3d best %-3d fails %d\n",
					mark, h.ID, h.Name, h.Periodicity, ui.IconFlame, h.Streak, h.LongestStreak, h.Fails)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "created", "Sort by (created|name|streak|fails)")
	cmd.Flags().StringVarP(&periodicity, "every", "e", "", "Only habits with this periodicity")

	return cmd
}

func sortHabits(habits []storage.Habit, by string) error {
	switch by {
	case "", "created":
		// ListAll already orders by creation time.
	case "name":
		sort.SliceStable(habits, func(i, j int) bool { return habits[i].Name < habits[j].Name })
	case "streak":
		sort.SliceStable(habits, func(i, j int) bool { return habits[i].Streak > habits[j].Streak })
	case "fails":
		sort.SliceStable(habits, func(i, j int) bool { return habits[i].Fails > habits[j].Fails })
	default:
		return fmt.Errorf("invalid sort criterion: %q", by)
	}
	return nil
}
