package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
)

// Script de manutenção: aplica o schema do histórico ou gera o hash da senha do admin.
//
//	go run ./infrastructure/migration/script              # aplica o schema
//	go run ./infrastructure/migration/script -hash senha  # imprime ADMIN_PASSWORD_HASH
func main() {
	password := flag.String("hash", "", "gera o hash bcrypt da senha informada e encerra")
	timeout := flag.Duration("timeout", 30*time.Second, "tempo máximo para aplicar o schema")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	if *password != "" {
		hash, err := authenticating.HashPassword(*password)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar hash da senha")
		}
		fmt.Fprintln(os.Stdout, hash)
		return
	}

	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}

	logrus.Info("Schema aplicado com sucesso")
}
