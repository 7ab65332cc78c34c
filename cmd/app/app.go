package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danceinaction/booking-api/internal/api"
	"github.com/danceinaction/booking-api/internal/config"
	"github.com/danceinaction/booking-api/internal/db"
	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	seats, err := domain.GenerateSeats()
	if err != nil {
		return fmt.Errorf("failed to generate seat layout -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, seats)

	if err = s.VerifySeeded(context.Background()); err != nil {
		zap.L().Warn("seeding check failed", zap.Error(err))
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
