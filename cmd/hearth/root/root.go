package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hearth/internal/ui"
)

const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "hearth",
	Short:         "Hearth — local-first habit tracker with a home to decorate",
	Long:          "Hearth is a local-first CLI/TUI habit tracker. Check-ins build streaks and level up the decorations of your home, with a Butler on hand for analytics and encouragement.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.config/hearth/config.yaml)")

	rootCmd.AddCommand(
		newAddCmd(),
		newCheckInCmd(),
		newListCmd(),
		newEditCmd(),
		newRemoveCmd(),
		newDecorCmd(),
		newButlerCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
