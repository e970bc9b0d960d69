package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a quick overview of streaks and decorations",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHouse, "Hearth Status"))
			fmt.Fprintln(out, ui.LabelValue("Habits", len(habits)))

			if h, v, ok := engine.LongestStreakOverall(habits); ok {
				fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(ui.IconTrophy+" Longest streak:"),
					fmt.Sprintf("%d (%s)", v, h.Name))
			}
			fmt.Fprintln(out, ui.LabelValue("Total fails", engine.AggregateFailCount(habits)))

			failing := engine.CurrentlyFailing(habits, time.Now().UTC())
			if len(failing) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Bad.Render(ui.IconWarn+" Needs attention:"))
				for _, h := range failing {
					fmt.Fprintf(out, "- #%d %s (%s)\n", h.ID, h.Name, h.Periodicity)
				}
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconCouch+" Decorations"))
			for _, h := range habits {
				d, err := svc.DecorationRepo().Get(ctx, h.DecorationID)
				if err != nil {
					return err
				}
				if d == nil {
					continue
				}
				tier := engine.TierForEXP(d.EXP)
				progress := ""
				if next, ok := engine.NextTierEXP(d.EXP); ok {
					progress = ui.Muted.Render(fmt.Sprintf("(%d/%d EXP)", d.EXP, next))
				} else {
					progress = ui.Gold.Render("(max tier)")
				}
				fmt.Fprintf(out, "- %s: %s %s %s\n", h.Name, d.Name, ui.TierText(tier.String()), progress)
			}
			return nil
		},
	}

	return cmd
}
