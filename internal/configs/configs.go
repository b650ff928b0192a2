package configs

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	DBPath    string `env:"DB_PATH" envDefault:"data/orders.db"`
	StaticDir string `env:"STATIC_DIR" envDefault:"web"`

	AIToken    string `env:"GITHUB_TOKEN" envDefault:""`
	AIEndpoint string `env:"AI_ENDPOINT" envDefault:"https://models.github.ai/inference"`
	AIModel    string `env:"AI_MODEL" envDefault:"openai/gpt-5"`

	// Used by cmd/emailer to reach a running server.
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:3000"`
	EmailPath string `env:"EMAIL_PATH" envDefault:"cmd/emailer/testdata/email.json"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) HTTPAddr() string {
	return ":" + c.Port
}
