package models

import (
	"time"
)

type Product struct {
	ID          int      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string   `gorm:"size:100;not null"         json:"name"`
	Platform    string   `gorm:"size:50;not null"          json:"platform"`
	Duration    string   `gorm:"size:50;not null"          json:"duration"`
	Price       float64  `gorm:"not null"                  json:"price"`
	PriceBefore *float64 `json:"price_before"`
	Stock       int      `gorm:"default:100"               json:"stock"`
	ImageURL    string   `gorm:"size:200;not null"         json:"image_url"`
}

type Order struct {
	ID            int         `gorm:"primaryKey;autoIncrement"     json:"id"`
	OrderCode     string      `gorm:"size:50;uniqueIndex;not null" json:"order_id_str"`
	CustomerEmail string      `gorm:"size:100;not null"            json:"customer_email"`
	ItemsCount    int         `gorm:"not null"                     json:"items_count"`
	Total         float64     `gorm:"not null"                     json:"total"`
	PaymentMethod string      `gorm:"size:20;not null"             json:"payment_method"`
	Status        OrderStatus `gorm:"size:20;not null"             json:"status"`
	Timestamp     time.Time   `gorm:"autoCreateTime"               json:"timestamp"`
}
