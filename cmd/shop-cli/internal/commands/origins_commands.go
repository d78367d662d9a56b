package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newOriginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "origins",
		Short: "Print the CORS allow-list computed from FRONTEND_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return printOrigins(cmd.OutOrStdout(), cfg.Cors.AllowedOrigins())
		},
	}
}

func printOrigins(out io.Writer, origins []string) error {
	for _, origin := range origins {
		if _, err := fmt.Fprintln(out, origin); err != nil {
			return err
		}
	}
	return nil
}
