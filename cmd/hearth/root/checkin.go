package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"hearth/internal/ui"
)

func newCheckInCmd() *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "checkin <id>",
		Short: "Check in a habit for the current period",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, _ := strconv.ParseInt(args[0], 10, 64)

			at := time.Now().UTC()
			if atFlag != "" {
				t, err := time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return fmt.Errorf("invalid --at timestamp (want RFC3339): %w", err)
				}
				at = t
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CheckIn(ctx, id, at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyChecked {
				fmt.Fprintf(out, "%s Already checked in for this period — nothing to do.\n", ui.Warn.Render(ui.IconInfo))
				return nil
			}

			fmt.Fprintf(out, "%s #%d %s\n", ui.Good.Render(ui.IconDone+" Checked in"), res.HabitID,
				ui.Muted.Render(fmt.Sprintf("(+%d EXP)", res.EXPAwarded)))
			if res.Missed > 0 {
				fmt.Fprintf(out, "%s Missed %d period(s); streak restarts at 1.\n", ui.Warn.Render(ui.IconWarn), res.Missed)
			}
			fmt.Fprintf(out, "%s\n", ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFlame, res.StreakAfter, res.LongestStreak)))
			if res.RecordBeaten {
				fmt.Fprintf(out, "%s %s\n", ui.BadgeRecord, ui.Muted.Render("You beat your longest streak!"))
			}
			if res.TierUpgraded {
				fmt.Fprintf(out, "%s Decoration is now %s %s\n", ui.BadgeUpgrade,
					ui.TierText(res.TierAfter.String()), ui.Muted.Render(fmt.Sprintf("(exp %d)", res.EXPTotal)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Check-in timestamp (RFC3339, default now)")

	return cmd
}
