package auth

import (
	"context"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// RegisterInput is the validated onboarding payload.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Register creates a new user account.
//
// The flow: reject duplicate emails, screen the identity against the
// external blacklist when the policy applies, salt-and-hash the password,
// insert the user, then attempt wallet provisioning as a best-effort step
// whose failure is swallowed — registration has already succeeded at that
// point and the wallet can be provisioned out of band. The returned user
// is re-read joined with its wallet; Wallet is nil when provisioning
// failed.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	existing, err := s.users.GetOne(ctx, persistence.Filter{"email": input.Email})
	if err != nil && !errs.IsNotFound(err) {
		s.logger.Error("Duplicate-email lookup failed", map[string]any{"error": err.Error()})
		return nil, errs.Internal("Failed to create user.", err)
	}
	if existing != nil {
		return nil, errs.Conflict("User already exists.")
	}

	if s.riskPolicy.applies(input.Email) && s.risk != nil {
		blacklisted, err := s.risk.IsBlacklisted(ctx, input.Email)
		if err != nil {
			s.logger.Error("Risk check failed", map[string]any{
				"email": input.Email,
				"error": err.Error(),
			})
			return nil, errs.Internal("Unable to complete registration.", err)
		}
		if blacklisted {
			s.logger.Warn("Registration blocked by risk screening", map[string]any{
				"email": input.Email,
			})
			return nil, errs.Forbidden("Registration declined.")
		}
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, errs.Internal("Failed to create user.", err)
	}

	user := &entity.User{
		Email:       input.Email,
		Password:    hashPassword(input.Password, salt),
		Salt:        salt,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errs.IsDuplicate(err) {
			return nil, errs.Conflict("User already exists.")
		}
		return nil, errs.Internal("Failed to create user.", err)
	}

	// Best-effort, at-most-once, no retry: a lost wallet here never fails
	// or delays the registration response.
	s.provisionWallet(ctx, user.ID)

	created, err := s.users.GetByID(ctx, user.ID, "Wallet")
	if err != nil {
		return nil, errs.Internal("Failed to create user.", err)
	}
	return created, nil
}

// provisionWallet runs wallet creation isolated from the registration
// outcome: panics are contained and errors are logged, never surfaced.
func (s *Service) provisionWallet(ctx context.Context, userID string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Wallet provisioning panicked", map[string]any{
				"user_id": userID,
				"panic":   r,
			})
		}
	}()

	if _, err := s.walletSvc.CreateWallet(ctx, userID); err != nil {
		s.logger.Error("Wallet provisioning failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
