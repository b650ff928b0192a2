package sqlite

import (
	"github.com/jinzhu/gorm"

	"ordertrack/internal/models"
)

type SettingSqliteStore struct {
	db *gorm.DB
}

func NewSettingStore(db *gorm.DB) *SettingSqliteStore {
	return &SettingSqliteStore{db: db}
}

func (r *SettingSqliteStore) GetAll() ([]models.Setting, error) {
	var out []models.Setting
	q := r.db.Find(&out)
	return out, q.Error
}

func (r *SettingSqliteStore) Get(key string) (models.Setting, error) {
	var s models.Setting
	q := r.db.Where("key = ?", key).First(&s)
	return s, q.Error
}

// Set upserts: last write wins, there is no settings history.
func (r *SettingSqliteStore) Set(key, value string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var s models.Setting
		err := tx.Where("key = ?", key).First(&s).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
			return tx.Create(&models.Setting{Key: key, Value: value}).Error
		case err != nil:
			return err
		default:
			return tx.Model(&models.Setting{}).
				Where("key = ?", key).
				Update("value", value).Error
		}
	})
}

// Seed inserts defaults only for keys with no row yet, so a restart never
// clobbers operator edits.
func (r *SettingSqliteStore) Seed(defaults map[string]string) error {
	for key, value := range defaults {
		if err := r.db.
			Where(models.Setting{Key: key}).
			Attrs(models.Setting{Value: value}).
			FirstOrCreate(&models.Setting{}).Error; err != nil {
			return err
		}
	}
	return nil
}
