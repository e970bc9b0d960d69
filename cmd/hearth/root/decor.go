package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/storage"
	"hearth/internal/ui"
)

func newDecorCmd() *cobra.Command {
	var sortBy string
	var freeOnly bool

	cmd := &cobra.Command{
		Use:   "decor",
		Short: "List decorations and their tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SyncDecorations(ctx); err != nil {
				return err
			}

			var decorations []storage.Decoration
			if freeOnly {
				decorations, err = svc.DecorationRepo().ListFree(ctx)
			} else {
				decorations, err = svc.DecorationRepo().ListAll(ctx)
			}
			if err != nil {
				return err
			}

			switch sortBy {
			case "", "id":
			case "name":
				sort.SliceStable(decorations, func(i, j int) bool { return decorations[i].Name < decorations[j].Name })
			case "exp":
				sort.SliceStable(decorations, func(i, j int) bool { return decorations[i].EXP > decorations[j].EXP })
			case "room":
				sort.SliceStable(decorations, func(i, j int) bool { return decorations[i].Room < decorations[j].Room })
			default:
				return fmt.Errorf("invalid sort criterion: %q", sortBy)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCouch, "Decorations"))
			for _, d := range decorations {
				used, err := svc.DecorationRepo().InUse(ctx, d.ID)
				if err != nil {
					return err
				}
				status := ui.Good.Render("free")
				if used {
					status = ui.Muted.Render("in use")
				}
				tier := engine.TierForEXP(d.EXP)
				fmt.Fprintf(out, "%3d  %-14s %-13s %s  %3d EXP  %s\n",
					d.ID, d.Name, d.Room, ui.TierText(tier.String()), d.EXP, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "id", "Sort by (id|name|exp|room)")
	cmd.Flags().BoolVarP(&freeOnly, "free", "f", false, "Only decorations not attached to a habit")

	return cmd
}
