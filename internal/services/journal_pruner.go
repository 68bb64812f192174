package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/assignment-board/repository"
)

// PrunerConfig controls how often and how far back the journal is trimmed.
type PrunerConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// JournalPruner drops activity entries older than the retention window on a schedule.
type JournalPruner struct {
	activity repository.ActivityRepository
	logger   *zap.Logger
	cron     *cron.Cron
	cfg      PrunerConfig
	now      func() time.Time
}

func NewJournalPruner(activity repository.ActivityRepository, logger *zap.Logger, cfg PrunerConfig) *JournalPruner {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &JournalPruner{
		activity: activity,
		logger:   logger,
		cfg:      cfg,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = p.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := p.Prune(ctx); err != nil {
			p.logger.Error("journal prune failed", zap.Error(err))
		}
	})

	return p
}

// Start launches the cron scheduler.
func (p *JournalPruner) Start() {
	if p == nil || p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("journal pruner started", zap.Duration("interval", p.cfg.Interval), zap.Duration("retention", p.cfg.Retention))
}

// Stop waits for a running prune to finish or for ctx to expire.
func (p *JournalPruner) Stop(ctx context.Context) {
	if p == nil || p.cron == nil {
		return
	}
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	p.logger.Info("journal pruner stopped")
}

// Prune removes entries older than the retention window once.
func (p *JournalPruner) Prune(ctx context.Context) (int, error) {
	if p == nil || p.activity == nil {
		return 0, nil
	}
	cutoff := p.now().Add(-p.cfg.Retention)
	removed, err := p.activity.Prune(ctx, cutoff)
	if err != nil {
		return removed, err
	}
	if removed > 0 {
		p.logger.Info("journal pruned", zap.Int("removed", removed), zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
