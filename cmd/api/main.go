package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify"
	"github.com/kayesami/roas-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/kayesami/roas-dashboard-api/internal/api"
	"github.com/kayesami/roas-dashboard-api/internal/config"
	"github.com/kayesami/roas-dashboard-api/internal/scheduler"
	"github.com/kayesami/roas-dashboard-api/internal/usecases/reconciling"
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

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	reconciler := reconciling.NewService(cfg, shopifyIntegrator, metaIntegrator)

	logrus.WithFields(logrus.Fields{
		"stores":           reconciler.Stores(),
		"upstream_timeout": cfg.Upstream.Timeout.String(),
		"max_pages":        cfg.Upstream.MaxPages,
	}).Info("Reconciliador configurado")

	dailySummaryService := scheduler.NewDailySummaryService(reconciler, cfg)
	if err := dailySummaryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumo diário")
	} else {
		logrus.Info("Agendador de resumo diário iniciado com sucesso")
	}

	server, err := api.New(cfg, reconciler, dailySummaryService)
	if err != nil {
		logrus.Fatal(err)
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
