package jobs

import (
	"context"
	"log/slog"
	"time"

	"invoicing/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SendingMonitorJob periodically reports invoices stuck in the sending
// state, i.e. invoices whose notification was sent but never confirmed.
// The job only observes; stuck invoices stay in sending until a
// confirmation arrives.
type SendingMonitorJob struct {
	handler   queries.GetOverdueSendingInvoicesQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSendingMonitorJob creates a job that flags invoices in sending for
// longer than the given threshold.
func NewSendingMonitorJob(handler queries.GetOverdueSendingInvoicesQueryHandler,
	threshold time.Duration, logger *slog.Logger) *SendingMonitorJob {
	return &SendingMonitorJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "sending_monitor_job"),
	}
}

// Start begins the monitor job to run every minute.
func (j *SendingMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueSendingInvoicesQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Sending monitor job failed", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Sending monitor job failed", "error", handleErr)
			return
		}

		for _, stuck := range overdue {
			j.logger.WarnContext(ctx, "Invoice stuck in sending",
				"invoice_id", stuck.ID, "sending_for", stuck.SendingFor)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sending monitor job started (running every minute)")
	return nil
}

// Stop stops the monitor job.
func (j *SendingMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sending monitor job stopped")
}
