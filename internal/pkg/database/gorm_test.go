package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// O sqlite usa um espaço de nomes global para índices, então o schema
// completo precisa migrar sem nomes de índice repetidos entre tabelas.
func TestMigrateFullSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "roles", "user_roles", "posts", "post_media", "tips", "generation_config", "sponsors", "donation_settings"} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
}
