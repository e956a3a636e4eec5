package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khatapana/khata_backend/internal/apperrors"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/dto"
	"github.com/khatapana/khata_backend/internal/middleware"
)

// SupplierHandler handles supplier CRUD and the ledger view.
type SupplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService portssvc.SupplierSvcFacade) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// registerSupplierRoutes sets up the protected supplier routes.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := NewSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("/", h.CreateSupplier)
		suppliers.GET("/", h.ListSuppliers)
		suppliers.GET("/summary", h.ListSupplierSummaries)
		suppliers.GET("/list", h.ListSupplierNames)
		suppliers.GET("/:supplierID/ledger", h.GetSupplierLedger)
		suppliers.PUT("/:supplierID", h.UpdateSupplier)
	}
}

// CreateSupplier godoc
// @Summary Create supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Supplier name is required"})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create supplier", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// ListSuppliers godoc
// @Summary List suppliers, newest first
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch suppliers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponseList(suppliers))
}

// ListSupplierSummaries godoc
// @Summary Supplier summary with stored balances, name ascending
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/summary [get]
func (h *SupplierHandler) ListSupplierSummaries(c *gin.Context) {
	suppliers, err := h.supplierService.ListSupplierSummaries(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list supplier summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch supplier summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponseList(suppliers))
}

// ListSupplierNames godoc
// @Summary Slim supplier list for dropdowns
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.SupplierNameResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/list [get]
func (h *SupplierHandler) ListSupplierNames(c *gin.Context) {
	suppliers, err := h.supplierService.ListSupplierSummaries(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list supplier names", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch supplier list"})
		return
	}

	names := make([]dto.SupplierNameResponse, len(suppliers))
	for i, s := range suppliers {
		names[i] = dto.SupplierNameResponse{ID: s.SupplierID, Name: s.Name}
	}
	c.JSON(http.StatusOK, names)
}

// GetSupplierLedger godoc
// @Summary Supplier ledger: stored balance plus chronological history
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierLedgerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/{supplierID}/ledger [get]
func (h *SupplierHandler) GetSupplierLedger(c *gin.Context) {
	supplierID := c.Param("supplierID")

	ledger, err := h.supplierService.GetSupplierLedger(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get supplier ledger", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierLedgerResponse(ledger))
}

// UpdateSupplier godoc
// @Summary Update supplier contact details
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/{supplierID} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	supplierID := c.Param("supplierID")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}
