package fittracker

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or set the appearance preference",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(ctx context.Context, kv storage.KV) error {
			value, err := theme.Load(ctx, kv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark>",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withKV(func(ctx context.Context, kv storage.KV) error {
			if err := theme.Save(ctx, kv, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGetCmd, themeSetCmd)
}
