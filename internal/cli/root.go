package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mateusmacedo/go-fleetseed/internal/config"
)

// StdoutPath faz o script ser escrito na saída padrão.
const StdoutPath = "-"

type options struct {
	configPath string
	format     string
	database   string
	out        string
	debug      bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "fleetseed",
		Short:        "Seed an in-memory fleet and export it as mongosh script or documents",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "config file (optional; env vars override it)")
	flags.StringVar(&opts.format, "format", "", "document format: json|extjson (default from EXPORT_FORMAT)")
	flags.StringVar(&opts.database, "database", "", "database selected by the script (default from EXPORT_DATABASE)")
	flags.StringVar(&opts.out, "out", "", "output file for script, directory for jsons; - writes the script to stdout")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(scriptCmd(opts), jsonsCmd(opts), configCmd())
	return cmd
}
