package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"ordertrack/internal/ai"
	"ordertrack/internal/models"
	"ordertrack/internal/repository"
)

type Orders interface {
	ListOrders(f models.OrderFilter) ([]models.Order, int, error)
	GetOrder(id string) (models.Order, error)
	FindOrderByNumber(number string) (models.Order, error)
	CreateOrder(in models.OrderInput) (models.Order, error)
	UpdateOrder(id string, patch models.OrderPatch) (models.Order, error)
	DeleteOrder(id string) error
}

type Settings interface {
	GetAllSettings() (map[string]interface{}, error)
	GetSetting(key string) (interface{}, error)
	SetSetting(key string, value interface{}) error
	GetStringList(key string) ([]string, error)
	SetStringList(key string, value interface{}) error
}

type Stats interface {
	GetStats() (models.Stats, error)
}

type Webhooks interface {
	ProcessEmail(ctx context.Context, email WebhookEmail) (WebhookResult, error)
}

// OrderTracker is the full surface the HTTP layer depends on.
type OrderTracker interface {
	Orders
	Settings
	Stats
	Webhooks
}

// EmailAnalyzer is what the webhook pipeline needs from the AI backend. Both
// calls degrade internally instead of returning errors.
type EmailAnalyzer interface {
	ClassifyEmail(ctx context.Context, subject, body string) ai.Classification
	ExtractOrderData(ctx context.Context, subject, body string) ai.Extraction
}

type Service struct {
	repository.OrderStore
	repository.SettingStore
	repository.StatsStore

	analyzer EmailAnalyzer
	v        *validator.Validate
}

func NewService(repo *repository.Repository, analyzer EmailAnalyzer) *Service {
	return &Service{
		OrderStore:   repo.OrderStore,
		SettingStore: repo.SettingStore,
		StatsStore:   repo.StatsStore,
		analyzer:     analyzer,
		v:            validator.New(),
	}
}
