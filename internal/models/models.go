package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Description string  `json:"description"`
}

type Order struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date   string `gorm:"not null"                 json:"date"`
	Note   string `json:"note"`
	UserID uint   `gorm:"index;not null"           json:"user_id"`
}

// OrderProduct is one line item of an order. It has its own surrogate
// key: the same (order_id, product_id) pair may appear more than once
// and each insertion is a separate row.
type OrderProduct struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint `gorm:"index;not null"           json:"order_id"`
	ProductID uint `gorm:"not null"                 json:"product_id"`
	Quantity  uint `gorm:"not null"                 json:"quantity"`
}
