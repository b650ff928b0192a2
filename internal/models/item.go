package models

type OrderItem struct {
	ID       string   `json:"id"        gorm:"primary_key;type:varchar(36)"`
	OrderID  string   `json:"order_id"  gorm:"type:varchar(36);index"`
	ItemName string   `json:"item_name"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
}

// DefaultCurrency backs items whose source did not carry a currency code.
const DefaultCurrency = "AED"

type OrderItemInput struct {
	ItemName string   `json:"item_name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
}
