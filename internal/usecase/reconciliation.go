package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"osg-reconciler/internal/domain"
	"osg-reconciler/internal/matching"
)

// ReconciliationUseCase orchestrates one reconciliation run: load both sheets,
// match every warranty row against the customer's purchases, then enrich and
// summarise the result.
type ReconciliationUseCase struct {
	repo      SourceRepository
	stores    StoreRepository
	storePath string
	logger    *logrus.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase. stores may be
// nil, in which case rows are not enriched from store master data.
func NewReconciliationUseCase(repo SourceRepository, stores StoreRepository, storePath string, logger *logrus.Logger) *ReconciliationUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReconciliationUseCase{repo: repo, stores: stores, storePath: storePath, logger: logger}
}

// Reconcile performs the run. Any source that cannot be loaded aborts the whole
// run; unresolved rows and exhausted pools are reported, not treated as errors.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, warrantyPath, purchasePath string) (*domain.ReconciliationReport, error) {
	runID := uuid.New().String()
	log := uc.logger.WithFields(logrus.Fields{"run_id": runID, "warranty_file": warrantyPath, "purchase_file": purchasePath})

	// Step 1: Data Ingestion
	var (
		table     *domain.WarrantyTable
		purchases []domain.PurchaseRecord
		stores    []domain.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		table, err = uc.repo.GetWarrantyRows(gctx, warrantyPath)
		if err != nil {
			return fmt.Errorf("could not get warranty rows: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purchases, err = uc.repo.GetPurchaseRecords(gctx, purchasePath)
		if err != nil {
			return fmt.Errorf("could not get purchase records: %w", err)
		}
		return nil
	})
	if uc.stores != nil && uc.storePath != "" {
		g.Go(func() error {
			var err error
			stores, err = uc.stores.GetStores(gctx, uc.storePath)
			if err != nil {
				return fmt.Errorf("could not get store master data: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("reconciliation aborted")
		return nil, err
	}
	if table == nil {
		table = &domain.WarrantyTable{}
	}

	// Step 2: Matching and allocation
	outcome := matching.Reconcile(table.Rows, purchases)

	// Step 3: Master data enrichment
	enrichedFromMaster := 0
	if len(stores) > 0 {
		directory := NewStoreDirectory(stores)
		for i := range outcome.Rows {
			if directory.Enrich(&outcome.Rows[i]) {
				enrichedFromMaster++
			}
		}
	}

	report := &domain.ReconciliationReport{
		Summary: summarize(outcome, len(purchases)),
		Headers: table.Headers,
		Rows:    outcome.Rows,
	}
	report.Summary.RunID = runID
	report.Summary.StoresFromMaster = enrichedFromMaster

	log.WithFields(logrus.Fields{
		"rows":       report.Summary.TotalWarrantyRows,
		"resolved":   report.Summary.ResolvedRows,
		"unresolved": report.Summary.UnresolvedRows,
		"exhausted":  report.Summary.ExhaustedAllocations,
		"incomplete": report.Summary.IncompleteRows,
	}).Info("reconciliation completed")

	return report, nil
}

func summarize(outcome matching.Outcome, purchaseRows int) domain.Summary {
	summary := domain.Summary{
		TotalWarrantyRows:    len(outcome.Rows),
		TotalPurchaseRows:    purchaseRows,
		ExhaustedAllocations: outcome.Exhausted,
		ResolutionSteps:      make(domain.ResolutionCounts),
		RowsByCategory:       make(map[string]int),
		RowsByBrand:          make(map[string]int),
	}
	for _, row := range outcome.Rows {
		summary.ResolutionSteps[row.Resolution]++
		if row.ResolvedModel == "" {
			summary.UnresolvedRows++
		} else {
			summary.ResolvedRows++
		}
		if row.Incomplete() {
			summary.IncompleteRows++
		}
		if row.AssignedCategory != "" {
			summary.RowsByCategory[row.AssignedCategory]++
		}
		if brand := strings.TrimSpace(row.AssignedBrand); brand != "" {
			summary.RowsByBrand[brand]++
		}
	}
	return summary
}
