package entity

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType distinguishes the two legs of the ledger
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending    TransactionStatus = "pending"
	StatusSuccessful TransactionStatus = "successful"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
)

// Transaction is one immutable ledger entry: a single balance change on a
// single wallet, with the balance captured before and after the mutation.
// A transfer produces two rows sharing one TransactionReference.
type Transaction struct {
	ID                   string            `gorm:"type:uuid;primaryKey" json:"id"`
	TransactionReference string            `gorm:"index;not null" json:"transactionReference"`
	UserID               string            `gorm:"type:uuid;index;not null" json:"userId"`
	CounterpartyID       string            `gorm:"type:uuid;not null" json:"counterpartyId"`
	WalletID             string            `gorm:"type:uuid;not null" json:"walletId"`
	Type                 TransactionType   `gorm:"size:10;not null" json:"type"`
	Amount               int64             `gorm:"not null" json:"amount"`
	Currency             string            `gorm:"size:3;default:NGN" json:"currency"`
	BalanceBefore        int64             `gorm:"not null" json:"balanceBefore"`
	BalanceAfter         int64             `gorm:"not null" json:"balanceAfter"`
	Status               TransactionStatus `gorm:"size:20;default:pending" json:"status"`
	Narration            string            `json:"narration,omitempty"`
	Category             string            `json:"category,omitempty"`
	RelatedTransactionID *string           `gorm:"type:uuid" json:"relatedTransactionId,omitempty"`
	Metadata             map[string]any    `gorm:"serializer:json" json:"metadata,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate assigns a uuid primary key when none was supplied
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferenceLength is the number of random characters in a transaction reference
const ReferenceLength = 20

// NewTransactionReference generates the public random token that identifies
// a ledger movement. Both legs of a transfer share one reference, so it is
// distinct from (and never derivable from) the row's primary key.
func NewTransactionReference() string {
	buf := make([]byte, ReferenceLength)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return "txn_" + string(buf)
}
