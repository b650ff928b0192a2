package models

import (
	"time"
)

type Order struct {
	ID           string      `json:"id"            gorm:"primary_key;type:varchar(36)"`
	OrderNumber  string      `json:"order_number"  validate:"required" gorm:"unique_index;not null"`
	Vendor       string      `json:"vendor"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	Location     string      `json:"location"`
	ExpectedDate string      `json:"expected_date"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Items        []OrderItem `json:"items"         gorm:"foreignkey:OrderID"`
}

// DefaultStatus is applied when a create request or an extraction omits the
// order status.
const DefaultStatus = "Ordered"

type OrderInput struct {
	OrderNumber  string           `json:"order_number" validate:"required"`
	Vendor       string           `json:"vendor"`
	CustomerName string           `json:"customer_name"`
	Status       string           `json:"status"`
	Location     string           `json:"location"`
	ExpectedDate string           `json:"expected_date"`
	Notes        string           `json:"notes"`
	Items        []OrderItemInput `json:"items"`
}

// OrderPatch carries a partial update: a nil field keeps the stored value and
// a nil Items pointer leaves the item set alone.
type OrderPatch struct {
	OrderNumber  *string           `json:"order_number"`
	Vendor       *string           `json:"vendor"`
	CustomerName *string           `json:"customer_name"`
	Status       *string           `json:"status"`
	Location     *string           `json:"location"`
	ExpectedDate *string           `json:"expected_date"`
	Notes        *string           `json:"notes"`
	Items        *[]OrderItemInput `json:"items"`
}

type OrderFilter struct {
	Status string
	Vendor string
	Search string
	Limit  int
	Offset int
}
