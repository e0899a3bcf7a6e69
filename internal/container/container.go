package container

import (
	"go.uber.org/zap"

	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/config"
	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/core/logger"
	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/ledger"
	"github.com/ilramdhan/cmms.ilramdhan.dev/internal/storage"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	Store  *storage.Store
	Ledger *ledger.Ledger
}

func NewAppContainer(cfg config.Config) (*Container, error) {
	log := logger.NewLogger(cfg.LogLevel)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	led, err := ledger.New(store, ledger.Config{
		Actor:             cfg.Actor,
		NotificationTTL:   cfg.NotificationTTL,
		LowStockThreshold: cfg.LowStockThreshold,
	}, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: log,
		Store:  store,
		Ledger: led,
	}, nil
}

func (c *Container) Close() error {
	_ = c.Logger.Sync()
	return c.Store.Close()
}
