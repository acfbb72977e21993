package scanner

import (
	"context"
	"fmt"

	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Schedule triggers a rescan on every tick of the cron spec, for example
// "0 3 * * *" or "@every 6h". It blocks until ctx is done.
func (s *Scanner) Schedule(ctx context.Context, spec string) error {
	log := logger.FromCtx(ctx)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, s.Trigger); err != nil {
		return fmt.Errorf("invalid scan schedule %q: %w", spec, err)
	}

	scheduler.Start()
	log.Infow("scan schedule started", "schedule", spec)

	<-ctx.Done()
	<-scheduler.Stop().Done()
	return nil
}
