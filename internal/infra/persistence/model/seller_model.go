package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. Email, phone and GSTN each carry
// their own unique index; a violation on any of them surfaces as a
// duplicate key error mapped by the repository layer.
type SellerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Phone          string    `gorm:"type:varchar(10);unique;not null"`
	DisplayName    string    `gorm:"type:varchar(100);not null"`
	GSTN           string    `gorm:"column:gstn;type:varchar(15);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	PickupLocation string    `gorm:"type:text;not null"`
	Pincode        string    `gorm:"type:varchar(6);not null"`
	RefreshToken   *string   `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
