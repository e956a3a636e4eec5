package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portsrepo "github.com/khatapana/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/dto"
	"github.com/khatapana/khata_backend/internal/middleware"
)

const filterDateLayout = "2006-01-02"

// TransactionHandler handles ledger entry creation and listing.
type TransactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService portssvc.LedgerSvcFacade) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// registerTransactionRoutes sets up the protected transaction routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/", h.CreateTransaction)
		transactions.GET("/", h.ListTransactions)
	}
}

// CreateTransaction godoc
// @Summary Record a ledger entry
// @Description Inserts the transaction and adjusts the supplier balance atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List transactions
// @Description Paged listing with type, supplier, item-name search, date range and amount sort filters.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param type query string false "PURCHASE, PAYMENT or ALL"
// @Param supplierId query string false "Filter by supplier"
// @Param search query string false "Substring match on item name"
// @Param sort query string false "Amount sort: asc or desc"
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD, inclusive"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	filter, err := buildTransactionFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, total, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	data := make([]dto.TransactionWithSupplierResponse, len(txns))
	for i := range txns {
		data[i] = dto.ToTransactionWithSupplierResponse(&txns[i])
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	})
}

// buildTransactionFilter translates query parameters into the repository
// filter, normalizing the page into an offset.
func buildTransactionFilter(params dto.ListTransactionsParams) (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		Search:     params.Search,
		SortAmount: params.Sort,
		Limit:      params.Limit,
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	page := params.Page
	if page < 1 {
		page = 1
	}
	filter.Offset = (page - 1) * filter.Limit

	// "ALL" is the explicit no-filter value, exact match only.
	if params.Type != "" && params.Type != "ALL" {
		txnType := domain.TransactionType(params.Type)
		if !txnType.IsValid() {
			return filter, errors.New("type must be PURCHASE, PAYMENT or ALL")
		}
		filter.Type = &txnType
	}
	if params.SupplierID != "" {
		filter.SupplierID = &params.SupplierID
	}
	if params.From != "" {
		from, err := time.Parse(filterDateLayout, params.From)
		if err != nil {
			return filter, errors.New("from must be a date in YYYY-MM-DD format")
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse(filterDateLayout, params.To)
		if err != nil {
			return filter, errors.New("to must be a date in YYYY-MM-DD format")
		}
		filter.To = &to
	}
	return filter, nil
}
