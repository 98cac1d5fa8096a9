package fittracker

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/config"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/logging"
)

var (
	dataPath string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fittracker",
	Short: "fittracker logs workouts and shows calendar and weekly/monthly stats",
	Long:  "fittracker is a local-first workout tracker: log sessions by date, browse them on a calendar, and review weekly and monthly statistics. All data stays on this device.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(logging.SetupParams{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			FormatJSON: cfg.Log.FormatJSON,
		})
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the data file")
}
