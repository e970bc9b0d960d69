package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hearth/internal/engine"
	"hearth/internal/ui"
)

func newButlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "butler",
		Short: "Talk to your butler",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			line, err := svc.ButlerTalk(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconBell+" "+line)
			return nil
		},
	}

	cmd.AddCommand(newButlerInfoCmd(), newButlerReportCmd())

	return cmd
}

func newButlerInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the butler's persona",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := svc.ButlerPersona(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBell, "Your Butler"))
			fmt.Fprintln(out, ui.LabelValue("Name", b.Name))
			fmt.Fprintln(out, ui.LabelValue("Age", b.Age))
			fmt.Fprintln(out, ui.LabelValue("Appearance", b.Appearance))
			fmt.Fprintln(out, ui.LabelValue("Personality", b.Description))
			return nil
		},
	}
}

func newButlerReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Habit analytics, as presented by the butler",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rep, err := svc.ButlerReport(ctx, time.Now().UTC())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Habit Analysis"))
			if rep.TotalHabits == 0 {
				fmt.Fprintf(out, "%s has nothing to analyze yet — add a habit first.\n", rep.Persona.Name)
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Muted.Render("“"+rep.Quote+"”"))
				return nil
			}

			fmt.Fprintln(out, ui.LabelValue("Tracked habits", rep.TotalHabits))
			for _, p := range engine.Periodicities() {
				names := rep.ByPeriodicity[p]
				if len(names) == 0 {
					continue
				}
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(p.Label()+":"), strings.Join(names, ", "))
			}
			if rep.Longest != nil {
				fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(ui.IconTrophy+" Longest streak:"),
					fmt.Sprintf("%d (%s)", rep.LongestValue, rep.Longest.Name))
			}
			if len(rep.Failing) > 0 {
				names := make([]string, 0, len(rep.Failing))
				for _, h := range rep.Failing {
					names = append(names, h.Name)
				}
				fmt.Fprintf(out, "%s %s\n", ui.Bad.Render(ui.IconWarn+" Currently failing:"), strings.Join(names, ", "))
			}
			fmt.Fprintln(out, ui.LabelValue("Total fails", rep.TotalFails))
			if rep.MostFailed != "" {
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("Most failed:"), rep.MostFailed,
					ui.Muted.Render("— perhaps rethink your approach?"))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("“"+rep.Quote+"”"))
			fmt.Fprintln(out, ui.LabelValue("Tip", rep.Tip))
			return nil
		},
	}
}
