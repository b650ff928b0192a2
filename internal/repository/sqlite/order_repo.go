package sqlite

import (
	"strings"

	"github.com/jinzhu/gorm"

	"ordertrack/internal/models"
)

const defaultListLimit = 50

type OrderSqliteStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderSqliteStore {
	return &OrderSqliteStore{db: db}
}

// IsUniqueViolation reports whether err is the driver's unique-constraint
// error, which for this schema can only mean a duplicate order_number.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *OrderSqliteStore) Create(o *models.Order) error {
	return r.db.
		Set("gorm:association_autocreate", false).
		Set("gorm:association_autoupdate", false).
		Transaction(func(tx *gorm.DB) error {
			hdr := *o
			hdr.Items = nil
			if err := tx.Create(&hdr).Error; err != nil {
				return err
			}
			for i := range o.Items {
				o.Items[i].OrderID = o.ID
				if err := tx.Create(&o.Items[i]).Error; err != nil {
					return err
				}
			}
			o.CreatedAt = hdr.CreatedAt
			o.UpdatedAt = hdr.UpdatedAt
			return nil
		})
}

// Save overwrites the order row and, when replaceItems is set, swaps the
// whole item set in the same transaction.
func (r *OrderSqliteStore) Save(o models.Order, replaceItems bool) error {
	return r.db.
		Set("gorm:association_autocreate", false).
		Set("gorm:association_autoupdate", false).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Order{}).
				Where("id = ?", o.ID).
				Updates(map[string]interface{}{
					"order_number":  o.OrderNumber,
					"vendor":        o.Vendor,
					"customer_name": o.CustomerName,
					"status":        o.Status,
					"location":      o.Location,
					"expected_date": o.ExpectedDate,
					"notes":         o.Notes,
				}).Error; err != nil {
				return err
			}

			if !replaceItems {
				return nil
			}

			if err := tx.Where("order_id = ?", o.ID).Delete(models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range o.Items {
				o.Items[i].OrderID = o.ID
				if err := tx.Create(&o.Items[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
}

func (r *OrderSqliteStore) GetByID(id string) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Items").Where("id = ?", id).First(&o)
	return o, q.Error
}

func (r *OrderSqliteStore) GetByNumber(number string) (models.Order, error) {
	var o models.Order
	q := r.db.Preload("Items").Where("order_number = ?", number).First(&o)
	return o, q.Error
}

// List returns one page ordered newest-first plus the total count over the
// same predicate, so pagination can be rendered without a second request.
func (r *OrderSqliteStore) List(f models.OrderFilter) ([]models.Order, int, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}

	q := r.db.Model(&models.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Vendor != "" {
		q = q.Where("vendor = ?", f.Vendor)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("order_number LIKE ? OR customer_name LIKE ?", pat, pat)
	}

	var total int
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []models.Order
	if err := q.Preload("Items").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *OrderSqliteStore) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Where("id = ?", id).First(&o).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(models.Order{}).Error
	})
}
