package auth

import (
	"context"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// Login verifies the credentials and returns the user joined with their
// wallet. Unknown email and wrong password produce the identical Forbidden
// so account existence never leaks.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.users.GetOne(ctx, persistence.Filter{"email": email})
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden("Invalid login credentials.")
		}
		return nil, err
	}

	if !verifyPassword(password, user.Salt, user.Password) {
		return nil, errs.Forbidden("Invalid login credentials.")
	}

	joined, err := s.users.GetByID(ctx, user.ID, "Wallet")
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{"user_id": user.ID})
	return joined, nil
}
