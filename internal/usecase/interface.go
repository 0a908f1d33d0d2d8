package usecase

import (
	"context"
	"time"

	"osg-reconciler/internal/domain"
)

// SourceRepository loads the two sheets a reconciliation run works on.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type SourceRepository interface {
	GetWarrantyRows(ctx context.Context, path string) (*domain.WarrantyTable, error)
	GetPurchaseRecords(ctx context.Context, path string) ([]domain.PurchaseRecord, error)
}

// StoreRepository loads store / RBM master data.
type StoreRepository interface {
	GetStores(ctx context.Context, path string) ([]domain.Store, error)
}

// CustomerRepository loads the OSID workbook used for claim lookups.
type CustomerRepository interface {
	GetCustomerRows(ctx context.Context, path string) ([]domain.CustomerSheetRow, error)
	ModTime(path string) (time.Time, error)
}

// CustomerFinder resolves a phone number to the customer's covered products.
type CustomerFinder interface {
	FindCustomerByPhone(ctx context.Context, phone string) (domain.Customer, error)
}

// Notifier delivers a composed claim email.
type Notifier interface {
	Send(ctx context.Context, email domain.ClaimEmail) error
}

// TrackingClient talks to the sheet-backed claim tracker.
type TrackingClient interface {
	Submit(ctx context.Context, record domain.TrackingRecord) error
	List(ctx context.Context) ([]domain.TrackingRecord, error)
}
