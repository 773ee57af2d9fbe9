package transferbot

import (
	"context"
	"time"

	"github.com/gabapcia/blocktransfer/internal/chainstream"
	"github.com/gabapcia/blocktransfer/internal/pkg/logger"
	"github.com/gabapcia/blocktransfer/internal/pkg/x/chflow"
	"github.com/gabapcia/blocktransfer/internal/transfer"
	"github.com/google/uuid"
)

// listen consumes the block stream one element at a time. Every notification
// triggers exactly one transfer attempt; stream errors and failed attempts are
// logged and the loop moves on to the next element.
func (s *service) listen(ctx context.Context, eventsCh <-chan chainstream.BlockEvent) error {
	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			if ctx.Err() != nil {
				return nil
			}

			logger.Warn(ctx, "block stream ended")
			return ErrStreamEnded
		}

		if event.IsError() {
			s.metrics.streamErrors.Add(ctx, 1)
			logger.Error(ctx, "block stream error", "error", event.Err)
			continue
		}

		s.metrics.notifications.Add(ctx, 1)
		s.handleNotification(ctx, event.Notification)
	}
}

// handleNotification performs and reports one transfer. The attempt is
// detached from the loop cancellation: Close never interrupts a transfer in
// flight.
func (s *service) handleNotification(ctx context.Context, notification chainstream.BlockNotification) {
	ctx = logger.Derive(context.WithoutCancel(ctx), "block.slot", notification.Slot)
	logger.Info(ctx, "new block")

	report := TransferReport{
		AttemptID:   uuid.Must(uuid.NewV7()).String(),
		Slot:        notification.Slot,
		Recipient:   s.recipient.String(),
		Lamports:    s.lamports,
		AttemptedAt: time.Now().UTC(),
	}

	signature, err := s.transfers.PerformTransfer(ctx, s.recipient, s.lamports)
	report.Duration = time.Since(report.AttemptedAt)

	if !signature.IsZero() {
		report.TransactionID = signature.String()
	}

	if err != nil {
		report.Stage = string(transfer.StageOf(err))
		report.Error = err.Error()
		logger.Error(ctx, "transfer failed",
			"transfer.stage", report.Stage,
			"transaction.id", report.TransactionID,
			"error", err,
		)
	} else {
		logger.Info(ctx, "transfer confirmed",
			"transaction.id", report.TransactionID,
			"transfer.lamports", s.lamports,
		)
	}

	s.metrics.recordTransfer(ctx, err != nil, report.Stage, report.Duration)

	if err := s.reporter.ReportTransfer(ctx, report); err != nil {
		logger.Warn(ctx, "error reporting transfer", "error", err)
	}
}
