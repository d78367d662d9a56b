package commands

import (
	"fmt"

	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const configFlag = "config"

// InitCommands registers every sub-command and the shared --config flag
func InitCommands(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to an optional YAML configuration file")

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newOriginsCommand())

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
