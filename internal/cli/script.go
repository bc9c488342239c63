package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
)

func scriptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Write the mongosh script that inserts every collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := bootstrap(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			script, err := a.slice.Script(ctx, a.cfg.Export.Database, a.format)
			if err != nil {
				return err
			}

			if opts.out == StdoutPath {
				_, err := fmt.Fprint(cmd.OutOrStdout(), script)
				return err
			}

			dir, name := a.cfg.Export.OutputDir, a.cfg.Export.ScriptName
			if opts.out != "" {
				dir, name = filepath.Dir(opts.out), filepath.Base(opts.out)
			}
			path, err := export.NewFileWriter(dir, a.logger).WriteScript(ctx, name, script)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
