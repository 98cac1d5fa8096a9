package fittracker

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(ctx context.Context, kv storage.KV) error {
			path, err := resolveDataPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittracker data at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
