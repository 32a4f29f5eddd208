package services

import (
	"time"

	"github.com/ghuser/invoicing/services/invoicing/domain/models"
)

// InvoiceItemResponse is the read-only projection of one invoice line.
type InvoiceItemResponse struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Quantity        int    `json:"quantity"`
	UnitPriceAmount int64  `json:"unit_price_amount"`
	SubtotalAmount  int64  `json:"subtotal_amount"`
	Currency        string `json:"currency"`
}

// InvoiceResponse is the flattened read-only projection of an invoice,
// built entirely from the aggregate's getters.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Status      string                `json:"status"`
	Currency    string                `json:"currency"`
	TotalAmount int64                 `json:"total_amount"`
	Items       []InvoiceItemResponse `json:"items"`
	IssuedAt    *time.Time            `json:"issued_at,omitempty"`
	DueAt       *time.Time            `json:"due_at,omitempty"`
}

// ClientResponse is the read-only projection of a client.
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Status  string `json:"status"`
}

func toInvoiceResponse(inv models.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items()))
	for _, item := range inv.Items() {
		items = append(items, InvoiceItemResponse{
			ID:              item.ID(),
			Description:     item.Description(),
			Quantity:        item.Quantity(),
			UnitPriceAmount: item.UnitPrice().Amount(),
			SubtotalAmount:  item.Subtotal().Amount(),
			Currency:        inv.Currency(),
		})
	}
	return InvoiceResponse{
		ID:          inv.ID(),
		Status:      inv.Status().String(),
		Currency:    inv.Currency(),
		TotalAmount: inv.Total().Amount(),
		Items:       items,
		IssuedAt:    inv.IssuedAt(),
		DueAt:       inv.DueAt(),
	}
}

func toClientResponse(c models.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Contact().Phone,
		Address: c.Contact().Address,
		TaxID:   c.Contact().TaxID,
		Status:  c.Status().String(),
	}
}
