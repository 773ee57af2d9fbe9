package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/gabapcia/blocktransfer/internal/transferbot"

	"github.com/redis/go-redis/v9"
)

var _ transferbot.Reporter = (*client)(nil)

// ReportTransfer appends report to the capped report stream. The stream is
// trimmed approximately, so it may briefly hold more than the configured length.
func (c *client) ReportTransfer(ctx context.Context, report transferbot.TransferReport) error {
	return c.conn.XAdd(ctx, &redis.XAddArgs{
		Stream: c.reportKey,
		MaxLen: c.reportMaxLen,
		Approx: true,
		Values: map[string]any{
			"attempt_id":     report.AttemptID,
			"slot":           strconv.FormatUint(report.Slot, 10),
			"recipient":      report.Recipient,
			"lamports":       strconv.FormatUint(report.Lamports, 10),
			"transaction_id": report.TransactionID,
			"stage":          report.Stage,
			"error":          report.Error,
			"succeeded":      strconv.FormatBool(report.Succeeded()),
			"attempted_at":   report.AttemptedAt.Format(time.RFC3339Nano),
			"duration_ms":    strconv.FormatInt(report.Duration.Milliseconds(), 10),
		},
	}).Err()
}
