package sqlite

import (
	"github.com/jinzhu/gorm"

	"ordertrack/internal/models"
)

type StatsSqliteStore struct {
	db *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsSqliteStore {
	return &StatsSqliteStore{db: db}
}

func (r *StatsSqliteStore) Collect() (models.Stats, error) {
	stats := models.Stats{
		OrdersByStatus: []models.StatusCount{},
		OrdersByVendor: []models.VendorCount{},
		RecentOrders:   []models.Order{},
	}

	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return models.Stats{}, err
	}

	byStatus, err := r.db.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Rows()
	if err != nil {
		return models.Stats{}, err
	}
	defer byStatus.Close()
	for byStatus.Next() {
		var sc models.StatusCount
		if err := byStatus.Scan(&sc.Status, &sc.Count); err != nil {
			return models.Stats{}, err
		}
		stats.OrdersByStatus = append(stats.OrdersByStatus, sc)
	}

	byVendor, err := r.db.Model(&models.Order{}).
		Select("vendor, count(*) as count").
		Group("vendor").
		Order("count DESC").
		Rows()
	if err != nil {
		return models.Stats{}, err
	}
	defer byVendor.Close()
	for byVendor.Next() {
		var vc models.VendorCount
		if err := byVendor.Scan(&vc.Vendor, &vc.Count); err != nil {
			return models.Stats{}, err
		}
		stats.OrdersByVendor = append(stats.OrdersByVendor, vc)
	}

	// Dashboard cards only need order headers, not items.
	if err := r.db.Model(&models.Order{}).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return models.Stats{}, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("status != ?", "Delivered").
		Count(&stats.PendingDelivery).Error; err != nil {
		return models.Stats{}, err
	}

	// created_at is stored as a sqlite-compatible time string, so the store's
	// own date functions decide the month boundary.
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", "Delivered").
		Where("strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')").
		Count(&stats.DeliveredThisMonth).Error; err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}
