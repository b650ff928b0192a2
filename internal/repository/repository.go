package repository

import (
	"ordertrack/internal/models"
	"ordertrack/internal/repository/sqlite"

	"github.com/jinzhu/gorm"
)

type OrderStore interface {
	Create(ord *models.Order) error
	Save(ord models.Order, replaceItems bool) error
	GetByID(id string) (models.Order, error)
	GetByNumber(number string) (models.Order, error)
	List(f models.OrderFilter) ([]models.Order, int, error)
	Delete(id string) error
}

type SettingStore interface {
	GetAll() ([]models.Setting, error)
	Get(key string) (models.Setting, error)
	Set(key, value string) error
	Seed(defaults map[string]string) error
}

type StatsStore interface {
	Collect() (models.Stats, error)
}

type Repository struct {
	OrderStore
	SettingStore
	StatsStore
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		OrderStore:   sqlite.NewOrderStore(db),
		SettingStore: sqlite.NewSettingStore(db),
		StatsStore:   sqlite.NewStatsStore(db),
	}
}
