package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pds/internal/bill"
	"pds/internal/config"
	"pds/internal/content"
	"pds/internal/logger"
)

type Application struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             *gorm.DB
	ContentHandler *content.Handler
	BillHandler    *bill.Handler
}

// ProvideListCache falls back to a no-op cache when redis is not available.
func ProvideListCache(cfg *config.Config, client *redis.Client) content.ListCache {
	return content.NewListCache(client, cfg.Redis.ListCacheTTL)
}
