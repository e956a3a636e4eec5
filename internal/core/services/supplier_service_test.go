package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khatapana/khata_backend/internal/apperrors"
	"github.com/khatapana/khata_backend/internal/core/domain"
	portssvc "github.com/khatapana/khata_backend/internal/core/ports/services"
	"github.com/khatapana/khata_backend/internal/core/services"
	"github.com/khatapana/khata_backend/internal/dto"
)

// MockSupplierRepository is a mock type for the SupplierRepositoryFacade interface
type MockSupplierRepository struct {
	MockSupplierReader
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// --- Test Suite Setup ---

type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo *MockSupplierRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo, suite.mockTxnRepo)
}

// --- CreateSupplier ---

func (suite *SupplierServiceTestSuite) TestCreateSupplier_StartsAtZeroBalance() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{Name: "Sharma Traders", Phone: "9800000001", Note: "cement"}

	var saved domain.Supplier
	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Supplier)
		}).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(supplier)
	suite.NotEmpty(supplier.SupplierID)
	suite.Equal("Sharma Traders", supplier.Name)
	suite.True(decimal.Zero.Equal(saved.Balance))
	suite.WithinDuration(time.Now(), supplier.CreatedAt, time.Second)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

// --- UpdateSupplier ---

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_MergesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       "Old Name",
		Phone:      "9800000001",
		Note:       "old note",
		Balance:    decimal.RequireFromString("350"),
	}
	newName := "New Name"
	req := dto.UpdateSupplierRequest{Name: &newName}

	var updated domain.Supplier
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, existing.SupplierID).Return(existing, nil).Once()
	suite.mockSupplierRepo.On("UpdateSupplier", ctx, mock.AnythingOfType("domain.Supplier")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Supplier)
		}).Return(nil).Once()

	supplier, err := suite.service.UpdateSupplier(ctx, existing.SupplierID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", supplier.Name)
	suite.Equal("9800000001", updated.Phone)
	suite.Equal("old note", updated.Note)
	// The update path never touches the balance.
	suite.True(existing.Balance.Equal(updated.Balance))
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	supplier, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(supplier)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "UpdateSupplier", mock.Anything, mock.Anything)
}

// --- GetSupplierLedger ---

func (suite *SupplierServiceTestSuite) TestGetSupplierLedger_ReportsStoredBalance() {
	ctx := context.Background()
	supplier := &domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       "Gupta Hardware",
		Balance:    decimal.RequireFromString("1200.50"),
	}
	entries := []domain.Transaction{
		{TransactionID: uuid.NewString(), SupplierID: supplier.SupplierID, Type: domain.Purchase, Amount: decimal.NewFromInt(2000)},
		{TransactionID: uuid.NewString(), SupplierID: supplier.SupplierID, Type: domain.Payment, Amount: decimal.NewFromInt(800)},
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplier.SupplierID).Return(supplier, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsBySupplierID", ctx, supplier.SupplierID).Return(entries, nil).Once()

	ledger, err := suite.service.GetSupplierLedger(ctx, supplier.SupplierID)

	suite.Require().NoError(err)
	suite.Equal(2, ledger.TotalTransactions)
	suite.Len(ledger.Entries, 2)
	// The reported balance is the stored column, not a recomputation.
	suite.True(supplier.Balance.Equal(ledger.CurrentBalance))
}

func (suite *SupplierServiceTestSuite) TestGetSupplierLedger_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	ledger, err := suite.service.GetSupplierLedger(ctx, supplierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(ledger)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsBySupplierID", mock.Anything, mock.Anything)
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
