package migration

import (
	"github.com/lendmark/demo-credit/internal/domain/entity"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"gorm.io/gorm"
)

// Seeder provisions the fixed records the ledger depends on
type Seeder struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, logger coreport.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedSystemAccount ensures the system account and its wallet exist. The
// system account is the counterparty recorded on deposits and withdrawals.
func (s *Seeder) SeedSystemAccount(accountID string) error {
	systemUser := entity.User{
		ID:        accountID,
		Email:     "system@demo-credit.internal",
		FirstName: "System",
		LastName:  "Account",
	}

	if err := s.db.Where("id = ?", accountID).FirstOrCreate(&systemUser).Error; err != nil {
		s.logger.Error("Failed to seed system account", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return err
	}

	systemWallet := entity.Wallet{
		UserID:   accountID,
		Email:    systemUser.Email,
		Currency: entity.DefaultCurrency,
	}

	if err := s.db.Where("user_id = ?", accountID).FirstOrCreate(&systemWallet).Error; err != nil {
		s.logger.Error("Failed to seed system wallet", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return err
	}

	s.logger.Info("System account ready", map[string]any{
		"account_id": accountID,
	})
	return nil
}
