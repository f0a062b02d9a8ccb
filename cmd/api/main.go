package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-demo-api/internal/api"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/scheduler"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/charting"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/generating"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/widgets"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Histórico de interações: postgres quando habilitado, memória caso contrário
	var (
		interactionRepo repository.InteractionRepository
		pgConn          *postgres.Connection
	)
	if cfg.Database.Enabled {
		pgConn = pgconn(ctx, cfg.Database)
		interactionRepo = repository.NewInteractionRepository(pgConn)
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de interações mantido em memória")
		interactionRepo = repository.NewMemoryInteractionRepository(cfg.Session.HistoryLimit)
	}

	sessionManager, err := session.NewManager(cfg, generating.NewGenerator(), interactionRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o gerenciador de sessões")
	}

	authenticator := authenticating.NewService(cfg)
	charter := charting.NewService(cfg)
	widgetService := widgets.NewService(interactionRepo)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessionManager, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sessionManager,
		authenticator,
		charter,
		widgetService,
		sessionCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if pgConn != nil {
		server.OnShutdown(func() {
			if err := pgConn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
			}
		})
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco e garante o schema do histórico
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
