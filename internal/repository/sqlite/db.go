package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ordertrack/internal/models"
)

// OpenDB opens (creating if needed) the single database file and switches it
// to WAL so readers are not blocked while a request writes.
func OpenDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create data dir")
		}
	}

	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	if err := db.DB().Ping(); err != nil {
		return nil, errors.Wrap(err, "ping sqlite")
	}

	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return nil, errors.Wrap(err, "set WAL")
	}

	return db, nil
}

// InitSchema creates the tables and indexes if absent and seeds the
// well-known settings rows. Safe to run on every startup: existing rows are
// never overwritten.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
	).Error; err != nil {
		return errors.Wrap(err, "migrate schema")
	}

	for name, column := range map[string]string{
		"idx_orders_status": "status",
		"idx_orders_vendor": "vendor",
	} {
		if db.Dialect().HasIndex("orders", name) {
			continue
		}
		if err := db.Model(&models.Order{}).AddIndex(name, column).Error; err != nil {
			return errors.Wrapf(err, "create index %s", name)
		}
	}

	defaults, err := defaultSettings()
	if err != nil {
		return err
	}
	if err := NewSettingStore(db).Seed(defaults); err != nil {
		return errors.Wrap(err, "seed settings")
	}

	logrus.Print("database schema ready")
	return nil
}

func defaultSettings() (map[string]string, error) {
	vendors, err := json.Marshal(models.DefaultVendors())
	if err != nil {
		return nil, errors.Wrap(err, "marshal default vendors")
	}
	statuses, err := json.Marshal(models.DefaultStatuses())
	if err != nil {
		return nil, errors.Wrap(err, "marshal default statuses")
	}
	return map[string]string{
		models.SettingVendors:  string(vendors),
		models.SettingStatuses: string(statuses),
	}, nil
}
