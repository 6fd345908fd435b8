package models

import "time"

// Order is a completed checkout. Item prices are snapshotted at purchase
// time so later catalog price changes never alter past orders.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total           float64     `gorm:"not null" json:"total"`
	ShippingName    string      `json:"shipping_name"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingCity    string      `json:"shipping_city"`
	ShippingZip     string      `json:"shipping_zip"`
	ShippingCountry string      `json:"shipping_country"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"not null;index" json:"order_id"`
	BookID   uint    `gorm:"not null" json:"book_id"`
	Book     Book    `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
