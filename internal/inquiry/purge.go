package inquiry

import (
	"context"
	"fmt"
	"time"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const purgeTimeout = 30 * time.Second

type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// NewPurgeScheduler returns a cron runner that purges expired inquiries on
// the given 5-field schedule. The caller starts and stops it.
func NewPurgeScheduler(p Purger, schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() { runPurge(p) })
	if err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	return c, nil
}

func runPurge(p Purger) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	log := logger.FromCtx(ctx).With(zap.String("job", "inquiry_purge"))

	n, err := p.PurgeExpired(ctx)
	if err != nil {
		log.Error("inquiry purge failed", zap.Error(err))
		return
	}

	metrics.RecordInquiriesPurged(int(n))
	log.Info("inquiry purge finished", zap.Int64("deleted", n))
}
