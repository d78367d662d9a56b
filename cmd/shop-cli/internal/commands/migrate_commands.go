package commands

import (
	"fmt"
	"io"

	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create every registered table and index that does not exist yet",
		Long: `migrate materializes the schema against DATABASE_URL. Existing tables are
left untouched, so running it repeatedly is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := setupLogger(&cfg.Logger)
			if err != nil {
				return err
			}

			return runMigrate(cmd.OutOrStdout(), cfg.Database, statusOnly, log)
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "Only report which tables exist")
	return cmd
}

func runMigrate(out io.Writer, settings config.DatabaseSettings, statusOnly bool, log logger.Logger) error {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close database: ", err)
		}
	}()

	if !statusOnly {
		if err := persistence.Migrate(db); err != nil {
			return fmt.Errorf("failed to materialize schema: %w", err)
		}
		log.Info(fmt.Sprintf("Schema materialized on %s database", settings.Type))
	}

	status := persistence.SchemaStatus(db)
	for _, table := range models.TableNames() {
		state := "missing"
		if status[table] {
			state = "present"
		}
		fmt.Fprintf(out, "%-12s %s\n", table, state)
	}

	return nil
}
