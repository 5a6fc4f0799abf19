package main

import (
	"log/slog"
	"net/http"
	"os"

	"chatbot-api/internal/api"
	"chatbot-api/internal/config"
	internaldb "chatbot-api/internal/db"
	"chatbot-api/internal/db/repository"
	"chatbot-api/internal/llm"
	"chatbot-api/internal/service/chat"
	"chatbot-api/internal/service/history"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("load .env", "error", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}

	writeDB, readDB, err := internaldb.OpenSQLitePair(cfg.DatabaseURL, 4)
	if err != nil {
		logger.Error("open database", "path", cfg.DatabaseURL, "error", err)
		os.Exit(1)
	}
	defer writeDB.Close()
	defer readDB.Close()

	if err := internaldb.RunMigrations(writeDB); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	historyRepo := repository.NewHistoryRepo(writeDB, readDB)
	model := llm.New(cfg.LLM)

	chatSvc := chat.NewService(model, historyRepo, logger)
	historySvc := history.NewService(historyRepo)

	handler := api.NewHandler(chatSvc, historySvc)
	router := api.NewRouter(cfg, handler)

	logger.Info("chatbot API listening",
		"addr", cfg.ListenAddr,
		"db", cfg.DatabaseURL,
		"model", cfg.LLM.Model,
	)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
