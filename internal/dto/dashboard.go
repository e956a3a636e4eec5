package dto

import (
	"github.com/shopspring/decimal"

	"github.com/khatapana/khata_backend/internal/core/domain"
)

// DashboardResponse is the aggregated home-screen payload.
type DashboardResponse struct {
	SupplierCount      int64                             `json:"supplierCount"`
	TransactionCount   int64                             `json:"transactionCount"`
	TotalBalance       decimal.Decimal                   `json:"totalBalance"`
	TopSuppliers       []SupplierResponse                `json:"topSuppliers"`
	LatestTransactions []TransactionWithSupplierResponse `json:"latestTransactions"`
}

// ToDashboardResponse converts the domain summary.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	latest := make([]TransactionWithSupplierResponse, len(s.LatestTransactions))
	for i := range s.LatestTransactions {
		latest[i] = ToTransactionWithSupplierResponse(&s.LatestTransactions[i])
	}
	return DashboardResponse{
		SupplierCount:      s.SupplierCount,
		TransactionCount:   s.TransactionCount,
		TotalBalance:       s.TotalBalance,
		TopSuppliers:       ToSupplierResponseList(s.TopSuppliers),
		LatestTransactions: latest,
	}
}
