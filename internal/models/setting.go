package models

type Setting struct {
	Key   string `json:"key"   gorm:"primary_key"`
	Value string `json:"value"`
}

// Well-known settings keys editable from the SPA.
const (
	SettingVendors  = "vendors"
	SettingStatuses = "statuses"
)

func DefaultVendors() []string {
	return []string{"Amazon", "Noon", "Namshi", "Sharaf DG", "Carrefour", "Other"}
}

func DefaultStatuses() []string {
	return []string{"Ordered", "Shipped", "Out for Delivery", "Delivered"}
}
