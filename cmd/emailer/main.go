// Command emailer posts a saved email JSON file to a running server's order
// webhook. Handy for exercising the ingestion pipeline without wiring up a
// real mail automation.
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ordertrack/internal/configs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.Print("config loaded")

	f, err := os.Open(cfg.EmailPath)
	if err != nil {
		logrus.Fatalf("open email file: %s", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		logrus.Fatalf("read email file: %s", err)
	}
	if !json.Valid(body) {
		logrus.Fatalf("email file %s is not valid JSON", cfg.EmailPath)
	}

	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(cfg.ServerURL + "/api/webhooks/order")
	if err != nil {
		logrus.Fatalf("webhook post failed: %s", err)
	}

	logrus.Printf("webhook responded %d: %s", resp.StatusCode(), resp.String())
}
