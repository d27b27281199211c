package handler

import (
	"net/http"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	authUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/auth"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/dto"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/middleware"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/token"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and session HTTP requests
type AuthHandler struct {
	authService *authUseCase.Service
	tokens      *token.Manager
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, tokens *token.Manager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), authUseCase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	sessionToken, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, sessionToken)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: sessionToken,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	sessionToken, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, sessionToken)
	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: sessionToken,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, sessionToken, int(h.tokens.MaxAge().Seconds()), "/", "", false, true)
}
