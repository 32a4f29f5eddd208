package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// InvoiceCacheTTL is the time-to-live for cached invoice projections.
	InvoiceCacheTTL = 24 * time.Hour

	invoiceCacheKeyPrefix = "invoice"
)

// CachedInvoiceItem is one line of the cached invoice projection.
type CachedInvoiceItem struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Quantity        int    `json:"quantity"`
	UnitPriceAmount int64  `json:"unit_price_amount"`
	SubtotalAmount  int64  `json:"subtotal_amount"`
}

// CachedInvoice is the denormalized invoice read model stored in Redis as a
// single JSON value. It mirrors the flattened response projection, not the
// aggregate, so reads never need to rebuild domain state.
type CachedInvoice struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Currency    string              `json:"currency"`
	TotalAmount int64               `json:"total_amount"`
	Items       []CachedInvoiceItem `json:"items"`
	IssuedAt    *time.Time          `json:"issued_at,omitempty"`
	DueAt       *time.Time          `json:"due_at,omitempty"`
}

// InvoiceCache provides read/write operations for invoice cache entries.
// Key format: "invoice:{invoiceID}".
type InvoiceCache struct {
	client *RedisClient
}

// NewInvoiceCache creates a new InvoiceCache backed by the given RedisClient.
func NewInvoiceCache(r *RedisClient) *InvoiceCache {
	return &InvoiceCache{client: r}
}

// Get retrieves a cached invoice by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *InvoiceCache) Get(ctx context.Context, invoiceID string) (*CachedInvoice, error) {
	data, err := c.client.Client().Get(ctx, c.key(invoiceID)).Bytes()
	if err != nil {
		return nil, err
	}
	var inv CachedInvoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &inv, nil
}

// Set writes a cached invoice with a 24-hour TTL.
func (c *InvoiceCache) Set(ctx context.Context, inv *CachedInvoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(inv.ID), data, InvoiceCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached invoice.
func (c *InvoiceCache) Delete(ctx context.Context, invoiceID string) error {
	if err := c.client.Client().Del(ctx, c.key(invoiceID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *InvoiceCache) key(invoiceID string) string {
	return fmt.Sprintf("%s:%s", invoiceCacheKeyPrefix, invoiceID)
}
