// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"log/slog"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// Reconciler enforces the header/lines amount invariant lazily: every invoice
// passing through a read path has its header amount recomputed from the line
// items, and a divergent stored amount is corrected in place before the entity
// is returned. Corrections are derived purely from the already-fetched lines,
// so concurrent redundant writes are idempotent.
type Reconciler struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler(invoiceRepo adapter.InvoiceRepository) *Reconciler {
	return &Reconciler{
		invoiceRepo: invoiceRepo,
	}
}

// Reconcile checks a single invoice and persists a corrected header amount
// when it diverges from the line total. The returned entity always carries
// the line-derived amount.
func (r *Reconciler) Reconcile(ctx context.Context, inv *entity.Invoice) error {
	lineTotal := inv.LineTotal()
	if inv.Header.InvoiceAmount.Equal(lineTotal) {
		return nil
	}

	slog.Warn("Correcting inconsistent invoice amount",
		"invoice_num", inv.Header.InvoiceNum,
		"stored_amount", inv.Header.InvoiceAmount.String(),
		"line_total", lineTotal.String(),
	)

	if err := r.invoiceRepo.UpdateAmount(ctx, inv.Header.InvoiceNum, lineTotal); err != nil {
		return err
	}

	inv.Header.InvoiceAmount = lineTotal
	return nil
}

// ReconcileAll applies Reconcile to every invoice in the slice. Listing N
// stale invoices issues up to N corrective writes; the correction itself is
// the cheap part, so there is no batching.
func (r *Reconciler) ReconcileAll(ctx context.Context, invoices []*entity.Invoice) error {
	for _, inv := range invoices {
		if err := r.Reconcile(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}
