package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/internal/api/handler"
	"github.com/vfg2006/dashboard-demo-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/scheduler"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/charting"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/widgets"
	"github.com/vfg2006/dashboard-demo-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(
	config *config.Config,
	sessions session.SessionManager,
	authenticator authenticating.Authenticator,
	charter charting.Charter,
	widgetService widgets.WidgetService,
	sessionCleanupService *scheduler.SessionCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SessionCleanupService: sessionCleanupService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           NewHandler(config, sessions, authenticator, charter, widgetService, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	sessions session.SessionManager,
	authenticator authenticating.Authenticator,
	charter charting.Charter,
	widgetService widgets.WidgetService,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(sessions)...),
		router.WithRoutes(handler.Sessions(sessions, authenticator, widgetService)...),
		router.WithRoutes(handler.Dataset(sessions)...),
		router.WithRoutes(handler.Charts(sessions, charter)...),
		router.WithRoutes(handler.Widgets(sessions, widgetService)...),
		router.WithRoutes(handler.Admin(authenticator)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra funções executadas depois que o servidor HTTP para
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Executando operações de limpeza")
	for _, fn := range s.onShutdown {
		fn()
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
