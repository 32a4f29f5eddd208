package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/invoicing/pkg/cache"
	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
	"github.com/ghuser/invoicing/services/invoicing/domain/repositories"
)

// dueDateOffsetDays is added to the issue date to derive the due date.
const dueDateOffsetDays = 30

// InvoiceService orchestrates the invoice lifecycle: load the aggregate,
// apply exactly one transition, persist the returned snapshot, then publish
// the accumulated events. The domain aggregate never calls outward; all I/O
// lives here behind the repository and publisher ports.
type InvoiceService struct {
	repo      repositories.InvoiceRepository
	publisher repositories.EventPublisher
	cache     *pkgcache.InvoiceCache
}

// NewInvoiceService returns an InvoiceService wired with the given ports.
// The cache may be nil; reads then always hit the repository.
func NewInvoiceService(repo repositories.InvoiceRepository, publisher repositories.EventPublisher, cache *pkgcache.InvoiceCache) *InvoiceService {
	return &InvoiceService{repo: repo, publisher: publisher, cache: cache}
}

// Create validates and persists a new draft invoice. The id must be unused.
func (s *InvoiceService) Create(ctx context.Context, cmd CreateInvoiceCommand) (InvoiceResponse, error) {
	exists, err := s.repo.Exists(ctx, cmd.InvoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("check invoice exists: %w", err)
	}
	if exists {
		return InvoiceResponse{}, fmt.Errorf("%w: %s", domain.ErrInvoiceAlreadyExists, cmd.InvoiceID)
	}

	items := make([]models.InvoiceItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		unitPrice, err := models.NewMoney(it.UnitPriceAmount, cmd.Currency)
		if err != nil {
			return InvoiceResponse{}, fmt.Errorf("%w: item %s: %w", domain.ErrInvalidInvoiceData, it.ID, err)
		}
		item, err := models.NewInvoiceItem(it.ID, unitPrice, it.Quantity, it.Description)
		if err != nil {
			return InvoiceResponse{}, fmt.Errorf("%w: item %s: %w", domain.ErrInvalidInvoiceData, it.ID, err)
		}
		items = append(items, item)
	}

	invoice, err := models.NewInvoice(cmd.InvoiceID, cmd.Currency, items)
	if err != nil {
		return InvoiceResponse{}, err
	}

	if err := s.repo.Save(ctx, invoice); err != nil {
		return InvoiceResponse{}, fmt.Errorf("save invoice: %w", err)
	}

	// Creation appends no events, but the publish step keeps the pattern
	// uniform across all operations.
	if err := s.publishAll(ctx, invoice); err != nil {
		return InvoiceResponse{}, err
	}

	resp := toInvoiceResponse(invoice)
	s.warmCache(resp)
	return resp, nil
}

// Issue transitions a draft invoice to issued. The due date is the issue
// date plus 30 days.
func (s *InvoiceService) Issue(ctx context.Context, cmd IssueInvoiceCommand) (InvoiceResponse, error) {
	invoice, err := s.repo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("get invoice: %w", err)
	}

	dueAt := cmd.IssueAt.AddDate(0, 0, dueDateOffsetDays)
	issued, err := invoice.Issue(dueAt)
	if err != nil {
		return InvoiceResponse{}, err
	}

	return s.persistAndPublish(ctx, issued)
}

// Pay transitions an issued or overdue invoice to paid.
func (s *InvoiceService) Pay(ctx context.Context, cmd PayInvoiceCommand) (InvoiceResponse, error) {
	invoice, err := s.repo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("get invoice: %w", err)
	}

	paid, err := invoice.MarkAsPaid()
	if err != nil {
		return InvoiceResponse{}, err
	}

	return s.persistAndPublish(ctx, paid)
}

// MarkAsOverdue transitions an issued invoice to overdue.
func (s *InvoiceService) MarkAsOverdue(ctx context.Context, cmd MarkAsOverdueCommand) (InvoiceResponse, error) {
	invoice, err := s.repo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("get invoice: %w", err)
	}

	overdue, err := invoice.MarkAsOverdue()
	if err != nil {
		return InvoiceResponse{}, err
	}

	return s.persistAndPublish(ctx, overdue)
}

// Void transitions any non-paid invoice to voided.
func (s *InvoiceService) Void(ctx context.Context, cmd VoidInvoiceCommand) (InvoiceResponse, error) {
	invoice, err := s.repo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("get invoice: %w", err)
	}

	voided, err := invoice.Void()
	if err != nil {
		return InvoiceResponse{}, err
	}

	return s.persistAndPublish(ctx, voided)
}

// SweepOverdue finds all issued invoices due strictly before asOf and marks
// each overdue. Per-invoice failures skip that invoice so one bad row cannot
// stall the sweep; the returned slice holds the ids actually transitioned.
func (s *InvoiceService) SweepOverdue(ctx context.Context, asOf time.Time) ([]string, error) {
	ids, err := s.repo.FindIssuedDueBefore(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("find due invoices: %w", err)
	}

	marked := make([]string, 0, len(ids))
	var firstErr error
	for _, id := range ids {
		cmd, err := NewMarkAsOverdueCommand(id)
		if err != nil {
			continue
		}
		if _, err := s.MarkAsOverdue(ctx, cmd); err != nil {
			// A concurrent pay or void between the query and the
			// transition is not a sweep failure.
			if errors.Is(err, domain.ErrInvalidStateTransition) || errors.Is(err, domain.ErrInvoiceNotFound) {
				continue
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("mark invoice %s overdue: %w", id, err)
			}
			continue
		}
		marked = append(marked, id)
	}
	return marked, firstErr
}

// GetByID retrieves an invoice projection using a read-through cache:
// Redis first, then the repository, warming the cache asynchronously.
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID string) (InvoiceResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, invoiceID); err == nil {
			return fromCachedInvoice(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache errors fall through to the repository.
			_ = err
		}
	}

	invoice, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("get invoice: %w", err)
	}

	resp := toInvoiceResponse(invoice)
	s.warmCache(resp)
	return resp, nil
}

// persistAndPublish saves the transitioned snapshot, then delivers its
// events. A publish failure after a successful save surfaces as
// ErrEventPublishing and does not undo the persisted state change.
func (s *InvoiceService) persistAndPublish(ctx context.Context, invoice models.Invoice) (InvoiceResponse, error) {
	if err := s.repo.Save(ctx, invoice); err != nil {
		return InvoiceResponse{}, fmt.Errorf("save invoice: %w", err)
	}
	resp := toInvoiceResponse(invoice)
	s.warmCache(resp)
	if err := s.publishAll(ctx, invoice); err != nil {
		return InvoiceResponse{}, err
	}
	return resp, nil
}

func (s *InvoiceService) publishAll(ctx context.Context, invoice models.Invoice) error {
	if err := s.publisher.PublishAll(ctx, invoice.Events()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEventPublishing, err)
	}
	return nil
}

func (s *InvoiceService) warmCache(resp InvoiceResponse) {
	if s.cache == nil {
		return
	}
	go func() {
		_ = s.cache.Set(context.Background(), toCachedInvoice(resp))
	}()
}

func toCachedInvoice(resp InvoiceResponse) *pkgcache.CachedInvoice {
	items := make([]pkgcache.CachedInvoiceItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, pkgcache.CachedInvoiceItem{
			ID:              it.ID,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPriceAmount: it.UnitPriceAmount,
			SubtotalAmount:  it.SubtotalAmount,
		})
	}
	return &pkgcache.CachedInvoice{
		ID:          resp.ID,
		Status:      resp.Status,
		Currency:    resp.Currency,
		TotalAmount: resp.TotalAmount,
		Items:       items,
		IssuedAt:    resp.IssuedAt,
		DueAt:       resp.DueAt,
	}
}

func fromCachedInvoice(inv *pkgcache.CachedInvoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:              it.ID,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPriceAmount: it.UnitPriceAmount,
			SubtotalAmount:  it.SubtotalAmount,
			Currency:        inv.Currency,
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Status:      inv.Status,
		Currency:    inv.Currency,
		TotalAmount: inv.TotalAmount,
		Items:       items,
		IssuedAt:    inv.IssuedAt,
		DueAt:       inv.DueAt,
	}
}
