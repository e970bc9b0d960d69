package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/ui"
)

func newAddCmd() *cobra.Command {
	var periodicity string
	var decoration string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := engine.ParsePeriodicity(periodicity)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CreateHabit(ctx, engine.CreateHabitInput{
				Name:        args[0],
				Periodicity: p,
				Decoration:  decoration,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Created"), res.HabitID, args[0],
				ui.Muted.Render(fmt.Sprintf("(%s)", p.Label())))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
				ui.LabelValue("Decoration", fmt.Sprintf("%s %s — %s", ui.IconCouch, res.Decoration.Name, res.Decoration.Room)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodicity, "every", "e", "daily", "Periodicity (daily|weekly|monthly|yearly)")
	cmd.Flags().StringVarP(&decoration, "decor", "d", "", "Decoration name from the catalog (default: first free)")

	return cmd
}
