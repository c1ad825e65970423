package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Amount      float64   `gorm:"not null"`
	Type        string    `gorm:"not null;size:20"`
	Status      string    `gorm:"not null;size:20;default:PENDING"`
	Currency    string    `gorm:"not null;size:10;default:USD"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
