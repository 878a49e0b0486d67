package models

import (
	"fmt"
	"time"
)

type Country struct {
	ID   string `gorm:"column:country_id;type:char(2);primaryKey" json:"country_id"`
	Name string `gorm:"column:country_name;type:text;not null" json:"country_name"`
}

func (Country) TableName() string { return "countries" }

type Customer struct {
	ID        int    `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	FirstName string `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Address   string `gorm:"column:address;type:text" json:"address"`
	Email     string `gorm:"column:email;type:text;not null" json:"email"`
	CountryID string `gorm:"column:country_id;type:char(2);not null;index" json:"country_id"`
}

func (Customer) TableName() string { return "customers" }

type ProductCategory struct {
	ID   int    `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name string `gorm:"column:category_name;type:text;not null" json:"category_name"`
}

func (ProductCategory) TableName() string { return "product_categories" }

type Product struct {
	ID          int     `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name        string  `gorm:"column:product_name;type:text;not null" json:"product_name"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Cost        float64 `gorm:"column:cost;not null;default:0" json:"cost"`
	Price       float64 `gorm:"column:price;not null;default:0" json:"price"`
	CategoryID  int     `gorm:"column:category_id;not null;index" json:"category_id"`
}

func (Product) TableName() string { return "products" }

type Warehouse struct {
	ID        int    `gorm:"column:warehouse_id;primaryKey;autoIncrement" json:"warehouse_id"`
	Name      string `gorm:"column:warehouse_name;type:text;not null" json:"warehouse_name"`
	CountryID string `gorm:"column:country_id;type:char(2);not null;index" json:"country_id"`
}

func (Warehouse) TableName() string { return "warehouses" }

// Inventory is one (product, warehouse) stock row. Absence of a row
// means zero stock.
type Inventory struct {
	ProductID   int `gorm:"column:product_id;primaryKey" json:"product_id"`
	WarehouseID int `gorm:"column:warehouse_id;primaryKey" json:"warehouse_id"`
	Quantity    int `gorm:"column:quantity;not null;default:0" json:"quantity"`
}

func (Inventory) TableName() string { return "inventories" }

// Статус заказа — строковый тип, хранится текстовым именем.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusDiscarded OrderStatus = "DISCARDED"
)

// OrderStatuses lists every status exactly once, in lifecycle order.
// ParseOrderStatus is derived from it, so adding a status here is the
// single change point.
var OrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusReceived,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusDiscarded,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

type Order struct {
	ID         int         `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	CustomerID int         `gorm:"column:customer_id;not null;index" json:"customer_id"`
	Status     OrderStatus `gorm:"column:status;type:text;not null;default:'CREATED'" json:"status"`
	OrderDate  time.Time   `gorm:"column:order_date;not null" json:"order_date"`
	ProductID  int         `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity   float64     `gorm:"column:quantity;not null" json:"quantity"`
}

func (Order) TableName() string { return "orders" }
