package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/invoicing/pkg/app"
	"github.com/ghuser/invoicing/pkg/cache"
	"github.com/ghuser/invoicing/pkg/config"
	"github.com/ghuser/invoicing/pkg/database"
	"github.com/ghuser/invoicing/pkg/events"
	"github.com/ghuser/invoicing/pkg/logger"
	"github.com/ghuser/invoicing/pkg/telemetry"
	"github.com/ghuser/invoicing/pkg/workflows"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
	invoiceEvents "github.com/ghuser/invoicing/services/invoicing/domain/events"
	invoicingwf "github.com/ghuser/invoicing/services/invoicing/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	svcs := appsvcs.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, svcs); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	w, err := startTemporalWorker(ctx, appConfig, svcs)
	if err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer w.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// invoiceTopics lists every invoice lifecycle topic the worker mirrors into
// the Redis read model.
var invoiceTopics = []string{
	invoiceEvents.TopicInvoiceIssued,
	invoiceEvents.TopicInvoicePaid,
	invoiceEvents.TopicInvoiceOverdue,
	invoiceEvents.TopicInvoiceVoided,
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, svcs *appsvcs.Services) error {
	for _, topic := range invoiceTopics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleInvoiceChanged(a, svcs))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", invoiceTopics)
	return nil
}

// handleInvoiceChanged returns a handler for invoice lifecycle events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops the stale cache entry and re-warms it from the repository so GetByID
// serves the post-transition projection from any process.
func handleInvoiceChanged(a *app.Application, svcs *appsvcs.Services) func(context.Context, *message.Message) error {
	invoiceCache := cache.NewInvoiceCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt struct {
			InvoiceID string `json:"invoice_id"`
		}
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := invoiceCache.Delete(ctx, evt.InvoiceID); err != nil {
			// Cache refresh is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache invalidation failed",
				"invoice_id", evt.InvoiceID, "error", err)
			return nil
		}
		if _, err := svcs.Invoice.GetByID(ctx, evt.InvoiceID); err != nil {
			a.Logger.WarnContext(ctx, "cache re-warm failed",
				"invoice_id", evt.InvoiceID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache refreshed", "invoice_id", evt.InvoiceID)
		}

		return nil
	}
}

// startTemporalWorker registers the overdue sweep workflow and starts the
// hourly cron schedule. Starting an already-running cron workflow id is a
// no-op, so restarts are safe.
func startTemporalWorker(ctx context.Context, a *app.Application, svcs *appsvcs.Services) (worker.Worker, error) {
	w := worker.New(a.TemporalClient.Client, invoicingwf.TaskQueue, worker.Options{})
	w.RegisterWorkflow(invoicingwf.OverdueSweepWorkflow)
	w.RegisterActivity(invoicingwf.NewActivities(svcs))

	if err := w.Start(); err != nil {
		return nil, err
	}

	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           invoicingwf.OverdueSweepWorkflowID,
		TaskQueue:    invoicingwf.TaskQueue,
		CronSchedule: invoicingwf.OverdueSweepCron,
	}, invoicingwf.OverdueSweepWorkflow)
	if err != nil {
		a.Logger.Warn("failed to start overdue sweep cron", "error", err)
	} else {
		a.Logger.Info("overdue sweep cron scheduled", "cron", invoicingwf.OverdueSweepCron)
	}

	return w, nil
}
