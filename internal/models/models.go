package models

type User struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Login             string `gorm:"unique;not null"          json:"login"`
	PasswordHash      string `gorm:"not null"                 json:"-"`
	Username          string `gorm:"not null"                 json:"username"`
	VerificationToken string `gorm:"index"                    json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string  `gorm:"not null"                  json:"name"`
	Description string  `gorm:"not null"                  json:"description"`
	Price       float64 `gorm:"not null"                  json:"price"`
	Count       uint    `json:"count"`
}

type Cart struct {
	ID        uint `gorm:"primaryKey"                  json:"id"`
	UserID    uint `gorm:"index;not null"              json:"user_id"`
	ProductID uint `gorm:"not null"                    json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"  json:"quantity"`
}
