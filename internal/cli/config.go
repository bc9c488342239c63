package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateusmacedo/go-fleetseed/internal/config"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "List the environment variables read by fleetseed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage, err := config.Usage()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), usage)
			return err
		},
	}
}
