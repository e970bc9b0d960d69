package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/ui"
)

func newEditCmd() *cobra.Command {
	var rename string
	var decoration string
	var periodicity string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename a habit, swap its decoration, or change its periodicity",
		Long: `Edit an existing habit.

Changing the periodicity resets the current streak to 0 and clears the last
check-in, since streak history does not carry across period sizes. The
longest streak is kept.`,
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
			if rename == "" && decoration == "" && periodicity == "" {
				return errors.New("nothing to change (use --rename, --decor and/or --every)")
			}
			ctx := context.Background()
			id, _ := strconv.ParseInt(args[0], 10, 64)

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if rename != "" {
				if err := svc.RenameHabit(ctx, id, rename); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s Renamed #%d to %q\n", ui.Good.Render(ui.IconDone), id, rename)
			}
			if decoration != "" {
				if err := svc.ChangeDecoration(ctx, id, decoration); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s Decoration of #%d is now %q %s\n", ui.Good.Render(ui.IconCouch), id, decoration,
					ui.Muted.Render("(the old one returned to the pool)"))
			}
			if periodicity != "" {
				p, err := engine.ParsePeriodicity(periodicity)
				if err != nil {
					return err
				}
				if err := svc.ChangePeriodicity(ctx, id, p); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s #%d is now %s %s\n", ui.Good.Render(ui.IconLoop), id, p.Label(),
					ui.Muted.Render("(current streak reset)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rename, "rename", "r", "", "New habit name")
	cmd.Flags().StringVarP(&decoration, "decor", "d", "", "New decoration (must be free)")
	cmd.Flags().StringVarP(&periodicity, "every", "e", "", "New periodicity (daily|weekly|monthly|yearly)")

	return cmd
}
