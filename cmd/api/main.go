package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/infrastructure/integrator/dataset"
	"github.com/vfg2006/ad-dashboard-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/ad-dashboard-api/internal/api"
	"github.com/vfg2006/ad-dashboard-api/internal/config"
	"github.com/vfg2006/ad-dashboard-api/internal/metrics"
	"github.com/vfg2006/ad-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/standardizing"
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

	m := metrics.New(cfg.Metrics.Namespace)

	datasetClient := datasetclient.NewClient(cfg)
	datasetIntegrator := dataset.New(cfg, datasetClient)

	standardizer := standardizing.NewService(logrus.StandardLogger(), m)
	dashboardService := dashboarding.NewService(datasetIntegrator, standardizer, m)

	datasetSyncService := scheduler.NewDatasetSyncService(dashboardService, cfg)

	// Inicia o agendador em background
	if err := datasetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de anúncios")
	} else {
		logrus.Info("Agendador de atualização de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, datasetSyncService, m)
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
