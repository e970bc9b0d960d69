package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hearth/internal/ui"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a habit and free its decoration",
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

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.HabitRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if err := svc.DeleteHabit(ctx, id); err != nil {
				return err
			}

			name := fmt.Sprintf("#%d", id)
			if h != nil {
				name = fmt.Sprintf("#%d %s", id, h.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconBroom+" Removed"), name,
				ui.Muted.Render("(its decoration is free again)"))
			return nil
		},
	}

	return cmd
}
