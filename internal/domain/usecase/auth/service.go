package auth

import (
	"strings"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	walletUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/wallet"
)

// RiskPolicy decides which registrations are screened against the external
// blacklist. Identities whose email domain is in SkipDomains bypass the
// check entirely (used for internal and test accounts).
type RiskPolicy struct {
	Enabled     bool
	SkipDomains []string
}

// applies reports whether the policy requires screening for the email.
func (p RiskPolicy) applies(email string) bool {
	if !p.Enabled {
		return false
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return true
	}
	domain := strings.ToLower(email[at+1:])
	for _, skip := range p.SkipDomains {
		if strings.EqualFold(skip, domain) {
			return false
		}
	}
	return true
}

// Service implements onboarding and session establishment: user creation
// with optional external risk screening and best-effort wallet
// provisioning, and credential verification for login.
type Service struct {
	users      persistence.Repository[entity.User]
	walletSvc  *walletUseCase.Service
	risk       coreport.RiskChecker
	riskPolicy RiskPolicy
	logger     coreport.Logger
}

// NewService creates the auth service. risk may be nil when screening is
// disabled by policy.
func NewService(
	users persistence.Repository[entity.User],
	walletSvc *walletUseCase.Service,
	risk coreport.RiskChecker,
	riskPolicy RiskPolicy,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:      users,
		walletSvc:  walletSvc,
		risk:       risk,
		riskPolicy: riskPolicy,
		logger:     logger,
	}
}
