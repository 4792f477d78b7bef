package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/infrastructure/database/migrations"
	"github.com/vfg2006/profit-calculator-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-calculator-api/infrastructure/repository"
	"github.com/vfg2006/profit-calculator-api/internal/api"
	"github.com/vfg2006/profit-calculator-api/internal/config"
	"github.com/vfg2006/profit-calculator-api/internal/scheduler"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-calculator-api/internal/usecases/waitlisting"
	"github.com/vfg2006/profit-calculator-api/pkg/log"
	"github.com/vfg2006/profit-calculator-api/pkg/validation"
)

func main() {
	// Formato dos logs antes de carregar a configuração
	log.Configure(os.Getenv("LOG_LEVEL"), nil)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel, nil)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
		logrus.Info("Migrations aplicadas com sucesso")
	}

	waitlistRepo := repository.NewWaitlistRepository(pgConn)

	calculator := calculating.NewService(validation.Default())
	waitlister := waitlisting.NewService(waitlistRepo, cfg.Waitlist)
	authenticator := authenticating.NewService(cfg.Auth)

	waitlistDigestService := scheduler.NewWaitlistDigestService(waitlistRepo, cfg)
	if err := waitlistDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo da lista de espera")
	} else {
		logrus.Info("Agendador do resumo da lista de espera iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Calculator:     calculator,
		Waitlist:       waitlister,
		Authenticator:  authenticator,
		WaitlistDigest: waitlistDigestService,
		Database:       pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
