package dbmysql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pds/internal/common"
	"pds/internal/config"
	"pds/internal/logger"
)

func TestGormLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  gormlogger.LogLevel
	}{
		{"debug", gormlogger.Info},
		{"WARN", gormlogger.Warn},
		{"warning", gormlogger.Warn},
		{"error", gormlogger.Error},
		{"info", gormlogger.Silent},
		{"", gormlogger.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, gormLogLevel(tt.level))
		})
	}
}

func TestNewMySQL_RequiresDatabaseName(t *testing.T) {
	cfg := &config.Config{}

	db, cleanup, err := NewMySQL(cfg, logger.NewNop())

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Nil(t, cleanup)
}

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))

	for _, table := range []string{"contents", "bills", "costs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn(&Content{}, "version"))
	assert.True(t, db.Migrator().HasColumn(&Bill{}, "content_id"))
}

func TestModelPredicates(t *testing.T) {
	c := &Content{Status: common.ContentStatusActive}
	assert.False(t, c.IsArchived())
	c.Status = common.ContentStatusArchived
	assert.True(t, c.IsArchived())

	b := &Bill{PaymentStatus: common.PaymentStatusNotPaid}
	assert.False(t, b.IsPaid())
	b.PaymentStatus = common.PaymentStatusPaid
	assert.True(t, b.IsPaid())
}
