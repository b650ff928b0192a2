package models

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type VendorCount struct {
	Vendor string `json:"vendor"`
	Count  int    `json:"count"`
}

// Stats is the dashboard aggregate, recomputed from the store on every call.
type Stats struct {
	TotalOrders        int           `json:"totalOrders"`
	OrdersByStatus     []StatusCount `json:"ordersByStatus"`
	OrdersByVendor     []VendorCount `json:"ordersByVendor"`
	RecentOrders       []Order       `json:"recentOrders"`
	PendingDelivery    int           `json:"pendingDelivery"`
	DeliveredThisMonth int           `json:"deliveredThisMonth"`
}
