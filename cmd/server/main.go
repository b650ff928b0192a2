package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ordertrack/internal/ai"
	"ordertrack/internal/configs"
	httpdelivery "ordertrack/internal/delivery/http"
	"ordertrack/internal/repository"
	"ordertrack/internal/repository/sqlite"
	"ordertrack/internal/service"
)

// @title order tracking service
// @version 1.0
// @description REST backend over a single-file sqlite database with a webhook that classifies incoming emails via a hosted chat-completion model and upserts extracted orders. Serves the dashboard SPA from the same process.

// @host localhost:3000
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	db, err := sqlite.OpenDB(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("sqlite open: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()

	if err := sqlite.InitSchema(db); err != nil {
		logrus.Fatalf("schema init: %s", err)
	}
	logrus.Printf("database ready at %s", cfg.DBPath)

	analyzer, err := ai.NewClient(ai.Config{
		Token:    cfg.AIToken,
		Endpoint: cfg.AIEndpoint,
		Model:    cfg.AIModel,
	})
	if err != nil {
		logrus.Fatalf("ai client: %s", err)
	}
	logrus.Printf("ai client ready, model %s", cfg.AIModel)

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, analyzer)

	h := httpdelivery.NewHandler(svc, cfg.StaticDir)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr(), h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit
	logrus.Print("shutdown signal received")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}
