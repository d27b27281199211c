package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCurrency is the currency assigned to newly provisioned wallets.
const DefaultCurrency = "NGN"

// Wallet holds a user's spendable balance in minor currency units (kobo).
// Exactly one wallet exists per user; the balance is only ever mutated
// inside a transactional scope and must never go negative.
type Wallet struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Email     string    `gorm:"not null" json:"email"`
	Currency  string    `gorm:"size:3;default:NGN" json:"currency"`
	Balance   int64     `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Currency == "" {
		w.Currency = DefaultCurrency
	}
	return nil
}

// CanDebit reports whether the wallet holds at least amount kobo.
func (w *Wallet) CanDebit(amount int64) bool {
	return amount > 0 && w.Balance >= amount
}
