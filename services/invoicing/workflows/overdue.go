// Package workflows contains the Temporal workflows for the invoicing
// context. The overdue sweep runs on a cron schedule from the worker process.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

const (
	// TaskQueue is the Temporal task queue for invoicing workflows.
	TaskQueue = "invoicing"

	// OverdueSweepWorkflowID keeps the cron workflow a singleton per namespace.
	OverdueSweepWorkflowID = "overdue-sweep"

	// OverdueSweepCron runs the sweep at the top of every hour.
	OverdueSweepCron = "0 * * * *"

	// sweepActivityName is the registered name of Activities.SweepOverdueInvoices.
	sweepActivityName = "SweepOverdueInvoices"
)

// SweepResult reports one sweep run.
type SweepResult struct {
	MarkedOverdue []string  `json:"marked_overdue"`
	SweptAt       time.Time `json:"swept_at"`
}

// OverdueSweepWorkflow marks all issued invoices past their due date as
// overdue. Each cron tick runs a single sweep activity.
func OverdueSweepWorkflow(ctx workflow.Context) (SweepResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    3,
		},
	})

	var result SweepResult
	if err := workflow.ExecuteActivity(ctx, sweepActivityName).Get(ctx, &result); err != nil {
		return SweepResult{}, err
	}

	workflow.GetLogger(ctx).Info("overdue sweep finished",
		"marked", len(result.MarkedOverdue), "swept_at", result.SweptAt)
	return result, nil
}

// Activities holds the worker-side dependencies of the invoicing workflows.
type Activities struct {
	svc *appsvcs.Services
}

// NewActivities returns the activity set backed by the given services.
func NewActivities(svc *appsvcs.Services) *Activities {
	return &Activities{svc: svc}
}

// SweepOverdueInvoices transitions every issued invoice due before now to
// overdue. Idempotent: invoices already swept, paid, or voided are skipped.
func (a *Activities) SweepOverdueInvoices(ctx context.Context) (SweepResult, error) {
	now := time.Now().UTC()
	marked, err := a.svc.Invoice.SweepOverdue(ctx, now)
	if err != nil {
		return SweepResult{}, err
	}
	return SweepResult{MarkedOverdue: marked, SweptAt: now}, nil
}
