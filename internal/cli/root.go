package cli

import (
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/logger"

	"github.com/spf13/cobra"
)

const app = "matchctl"

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetVersionInfo - значения из ldflags
func SetVersionInfo(v, c, b string) {
	version = v
	commit = c
	buildTime = b
}

// options - глобальные флаги
type options struct {
	configPath string
	outputFmt  string
}

// NewRootCmd собирает дерево команд matchctl
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   app,
		Short: "Offline tools for the job match backend",
		Long: `matchctl ranks workers against a job from JSON files, prepares the
database schema and runs maintenance passes without starting the server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.InitWithWriter("production", cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: $CONFIG_PATH or config/config.yaml)")
	root.PersistentFlags().StringVarP(&opts.outputFmt, "output", "o", "table",
		"output format (table, json)")

	root.AddCommand(
		newRankCmd(opts),
		newMigrateCmd(opts),
		newExpireCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute запускает matchctl
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig - --config имеет приоритет над CONFIG_PATH и DATABASE_URL
func (o *options) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.LoadConfig()
}
