//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"pds/internal/bill"
	"pds/internal/cache"
	"pds/internal/config"
	"pds/internal/content"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		logger.New,
		dbmysql.NewMySQL,
		cache.NewRedisClient,
		ProvideListCache,
		content.NewContentRepository,
		content.NewContentService,
		content.NewHandler,
		bill.NewBillRepository,
		bill.NewBillService,
		bill.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
