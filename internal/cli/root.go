package cli

import (
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/spf13/cobra"
)

const app = "careerboost"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "careerboost is a job-marketplace backend connecting candidates and recruiters",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"a config file (default is $CONFIG_PATH or ./configs/config.yaml)")
}

// bootstrap loads the config, sets up logging and opens a migrated database.
func bootstrap() (*config.Config, *repositories.DbContext, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Setup(cfg.Logger)

	dbContext, err := repositories.NewDbContext(cfg.DB)
	if err != nil {
		logger.Cleanup()
		return nil, nil, nil, err
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		logger.Cleanup()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = dbContext.Close()
		logger.Cleanup()
	}
	return cfg, dbContext, cleanup, nil
}
