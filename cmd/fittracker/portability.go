package fittracker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export workouts as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *workout.Store) error {
			workouts := store.Snapshot().Workouts
			raw, err := json.MarshalIndent(workouts, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			raw = append(raw, '\n')
			if exportOut == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d workouts to %s\n", len(workouts), exportOut)
			return nil
		})
	},
}

var (
	importIn    string
	importMerge bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import workouts from a JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var records []model.Workout
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("parse import file: %w", err)
		}
		for i, r := range records {
			if _, err := dateutil.ParseDate(r.Date); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			if !model.ValidWorkoutType(r.Type) {
				return fmt.Errorf("record %d: invalid workout type %q", i, r.Type)
			}
			if r.Duration <= 0 {
				return fmt.Errorf("record %d: duration must be > 0 minutes", i)
			}
		}
		return withStore(func(ctx context.Context, store *workout.Store) error {
			taken := store.Import(records, importMerge)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d workouts\n", taken)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
	importCmd.Flags().StringVar(&importIn, "in", "", "JSON file to import")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge with existing records instead of replacing")
	_ = importCmd.MarkFlagRequired("in")
}
