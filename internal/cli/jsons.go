package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
)

func jsonsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "jsons",
		Short: "Write one <Collection>.json document per collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.out == StdoutPath {
				return fmt.Errorf("jsons writes one file per collection; --out must be a directory")
			}

			ctx, a, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			documents, err := a.slice.Documents(ctx, a.format)
			if err != nil {
				return err
			}

			dir := a.cfg.Export.OutputDir
			if opts.out != "" {
				dir = opts.out
			}
			paths, err := export.NewFileWriter(dir, a.logger).WriteDocuments(ctx, documents)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
