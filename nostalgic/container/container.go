// Package container wires the application graph with dig. The server and the
// admin CLI share it, and nothing is built until something asks for it.
package container

import (
	"context"
	"time"

	"nostalgic/nostalgic/config"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/routes"
	"nostalgic/nostalgic/services/token"
	"nostalgic/nostalgic/sources/psql"
	"nostalgic/nostalgic/sources/storage"

	"go.uber.org/dig"
	"gorm.io/gorm"
)

const startupTimeout = 10 * time.Second

// New registers every provider for cfg.
func New(cfg config.Config) (*dig.Container, error) {
	c := dig.New()
	providers := []interface{}{
		func() config.Config { return cfg },
		newDatabase,
		func(db *psql.Database) *gorm.DB { return db.DB },
		newStore,
		newTokenService,
		newAuthController,
		controllers.NewContentController,
		controllers.NewImageController,
		func(db *psql.Database) *controllers.HealthController { return controllers.NewHealthController(db) },
		routes.NewRouter,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newDatabase(cfg config.Config) (*psql.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	return psql.NewDatabase(ctx, cfg)
}

func newStore(cfg config.Config) (storage.ImageStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	return storage.New(ctx, cfg)
}

func newTokenService(cfg config.Config) *token.Service {
	return token.NewService(cfg.JWTSecret, time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute)
}

func newAuthController(db *gorm.DB, tokens *token.Service, cfg config.Config) *controllers.AuthController {
	return controllers.NewAuthController(db, tokens, cfg.BcryptCost)
}
