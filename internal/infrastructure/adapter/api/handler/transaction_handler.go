package handler

import (
	"net/http"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
	ledgerUseCase "github.com/lendmark/demo-credit/internal/domain/usecase/ledger"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/dto"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/middleware"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger HTTP requests
type TransactionHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Deposit handles the POST /transaction/deposit endpoint
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	txn, err := h.ledgerService.Deposit(c.Request.Context(), middleware.UserID(c), req.Amount, req.Narration)
	metrics.ObserveLedgerOperation("deposit", err)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Withdraw handles the POST /transaction/withdraw endpoint
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	txn, err := h.ledgerService.Withdraw(c.Request.Context(), middleware.UserID(c), req.Amount, req.Narration)
	metrics.ObserveLedgerOperation("withdraw", err)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Transfer handles the POST /transaction/transfer endpoint
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	txn, err := h.ledgerService.Transfer(c.Request.Context(), middleware.UserID(c), req.CounterpartyID, req.Amount, req.Narration)
	metrics.ObserveLedgerOperation("transfer", err)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// List handles the GET /transaction endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	pagination := middleware.ParsePagination(c)

	filter := persistence.Filter{}
	if txnType := c.Query("type"); txnType != "" {
		filter["type"] = txnType
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	page, err := h.ledgerService.GetTransactions(
		c.Request.Context(),
		middleware.UserID(c),
		filter,
		pagination.Page,
		pagination.Limit,
		pagination.ListOptions(),
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

// Get handles the GET /transaction/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.ledgerService.GetTransaction(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}
