package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get invoice: %w", ErrInvoiceNotFound)
	if !errors.Is(wrapped, ErrInvoiceNotFound) {
		t.Fatal("errors.Is must match wrapped ErrInvoiceNotFound")
	}

	wrapped2 := fmt.Errorf("%w: item x is in EUR", ErrInvalidInvoiceData)
	if !errors.Is(wrapped2, ErrInvalidInvoiceData) {
		t.Fatal("errors.Is must match wrapped ErrInvalidInvoiceData")
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	pairs := [][2]error{
		{ErrInvalidAmount, ErrInvalidCurrency},
		{ErrCurrencyMismatch, ErrInsufficientFunds},
		{ErrInvoiceNotFound, ErrClientNotFound},
		{ErrInvalidInvoiceData, ErrInvalidClientData},
		{ErrInvalidStateTransition, ErrEventPublishing},
	}
	for _, p := range pairs {
		if errors.Is(p[0], p[1]) {
			t.Fatalf("%v must not match %v", p[0], p[1])
		}
	}
}

func TestStateTransitionError(t *testing.T) {
	err := NewStateTransitionError("PAID", "void")

	t.Run("matches the sentinel", func(t *testing.T) {
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatal("expected errors.Is match on ErrInvalidStateTransition")
		}
	})

	t.Run("carries status and operation", func(t *testing.T) {
		var ste *StateTransitionError
		if !errors.As(err, &ste) {
			t.Fatalf("expected *StateTransitionError, got %T", err)
		}
		if ste.CurrentStatus != "PAID" || ste.Operation != "void" {
			t.Fatalf("unexpected payload: %+v", ste)
		}
	})

	t.Run("message names both", func(t *testing.T) {
		if err.Error() != "cannot void invoice in PAID state" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("transition: %w", err)
		if !errors.Is(wrapped, ErrInvalidStateTransition) {
			t.Fatal("expected errors.Is match through wrapping")
		}
	})
}
