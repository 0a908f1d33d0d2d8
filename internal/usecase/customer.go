package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"osg-reconciler/internal/domain"
	"osg-reconciler/internal/matching"
)

// CustomerDirectory answers phone lookups against the OSID workbook. The sheet
// is cached and indexed by phone, and reloaded once its modification time moves.
type CustomerDirectory struct {
	repo   CustomerRepository
	path   string
	logger *logrus.Logger

	mu       sync.RWMutex
	modTime  time.Time
	loaded   bool
	rows     []domain.CustomerSheetRow
	byMobile map[string][]int
}

func NewCustomerDirectory(repo CustomerRepository, path string, logger *logrus.Logger) *CustomerDirectory {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CustomerDirectory{repo: repo, path: path, logger: logger}
}

// FindCustomerByPhone returns the customer's name and every product listed
// under phone. An exact phone match is preferred; a partial match is only
// tried when nothing matches exactly.
func (d *CustomerDirectory) FindCustomerByPhone(ctx context.Context, phone string) (domain.Customer, error) {
	phone = matching.NormalizePhone(phone)
	if phone == "" {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	if err := d.refresh(ctx); err != nil {
		return domain.Customer{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var matched []domain.CustomerSheetRow
	if idx, ok := d.byMobile[phone]; ok {
		for _, i := range idx {
			matched = append(matched, d.rows[i])
		}
	} else {
		for _, row := range d.rows {
			if strings.Contains(row.Phone, phone) {
				matched = append(matched, row)
			}
		}
	}
	if len(matched) == 0 {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	customer := domain.Customer{
		Name:     strings.TrimSpace(matched[0].Name),
		Phone:    matched[0].Phone,
		Products: make([]domain.CustomerProduct, 0, len(matched)),
	}
	for _, row := range matched {
		customer.Products = append(customer.Products, domain.CustomerProduct{
			Invoice:    row.Invoice,
			Model:      row.Model,
			Serial:     row.Serial,
			ExternalID: row.OSID,
		})
	}
	return customer, nil
}

func (d *CustomerDirectory) refresh(ctx context.Context) error {
	modTime, err := d.repo.ModTime(d.path)
	if err != nil {
		d.mu.RLock()
		loaded := d.loaded
		d.mu.RUnlock()
		if loaded {
			d.logger.WithError(err).WithField("file", d.path).Warn("customer file unavailable, serving cached copy")
			return nil
		}
		return fmt.Errorf("could not stat customer file %s: %w", d.path, err)
	}

	d.mu.RLock()
	fresh := d.loaded && !modTime.After(d.modTime)
	d.mu.RUnlock()
	if fresh {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded && !modTime.After(d.modTime) {
		return nil
	}

	start := time.Now()
	rows, err := d.repo.GetCustomerRows(ctx, d.path)
	if err != nil {
		return fmt.Errorf("could not load customer file %s: %w", d.path, err)
	}
	index := make(map[string][]int, len(rows))
	for i := range rows {
		rows[i].Phone = matching.NormalizePhone(rows[i].Phone)
		index[rows[i].Phone] = append(index[rows[i].Phone], i)
	}
	d.rows = rows
	d.byMobile = index
	d.modTime = modTime
	d.loaded = true

	d.logger.WithFields(logrus.Fields{
		"file":     d.path,
		"rows":     len(rows),
		"duration": time.Since(start).String(),
	}).Info("customer file loaded and indexed")
	return nil
}
