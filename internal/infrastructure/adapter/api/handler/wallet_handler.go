package handler

import (
	"net/http"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	walletUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/wallet"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/dto"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *walletUseCase.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// GetBalance handles the GET /wallet endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	wallet, err := h.walletService.GetBalance(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}
