package persistence

import (
	"fmt"

	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates the table and indexes of every registered model when absent.
// Running it against an up to date schema changes nothing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.Registry()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SchemaStatus reports, per registered table, whether it exists
func SchemaStatus(db *gorm.DB) map[string]bool {
	migrator := db.Migrator()

	status := make(map[string]bool)
	for _, table := range models.TableNames() {
		status[table] = migrator.HasTable(table)
	}
	return status
}

// PendingTables lists the registered tables that do not exist yet
func PendingTables(db *gorm.DB) []string {
	var pending []string
	status := SchemaStatus(db)
	for _, table := range models.TableNames() {
		if !status[table] {
			pending = append(pending, table)
		}
	}
	return pending
}
