package di

import (
	"log/slog"
	"os"

	"icpc-contest/internal/adapter/logging"
	"icpc-contest/internal/adapter/memory"
	"icpc-contest/internal/config"
	"icpc-contest/internal/domain/ports"
	"icpc-contest/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stderr, cfg.LogFormat, cfg.LogLevel))
}

func provideCatalog(cfg *config.Config) ports.ProblemCatalog {
	return memory.NewCatalog(cfg.CatalogCapacity)
}

func provideSubmissionConfig(cfg *config.Config) usecase.ProblemSubmissionConfig {
	return usecase.ProblemSubmissionConfig{
		PreviewLength: cfg.PreviewLength,
	}
}
