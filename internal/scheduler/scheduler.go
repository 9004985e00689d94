package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/config"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/drawservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DrawRepo interface {
	FindDue(ctx context.Context, now time.Time) ([]domain.Draw, error)
}

type Executor interface {
	Execute(ctx context.Context, drawID int64) (*drawservice.ExecuteResult, error)
}

// processingDraws guards against the same draw being handled by two
// overlapping ticks.
var processingDraws sync.Map

// Service polls for due pending draws and executes them. It shares the
// Execute entry point with the manual API path, so racing with a manual
// trigger is safe: whichever commits first wins and the other replays.
type Service struct {
	drawRepo   DrawRepo
	executor   Executor
	interval   time.Duration
	workerPool WorkerPoolI
}

func New(cfg *config.Config, drawRepo DrawRepo, executor Executor) *Service {
	return &Service{
		drawRepo:   drawRepo,
		executor:   executor,
		interval:   cfg.DrawInterval,
		workerPool: NewWorkerPool(4),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Draw scheduler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping draw scheduler")
			return
		case <-ticker.C:
			s.processDueDraws(ctx)
		}
	}
}

func (s *Service) processDueDraws(ctx context.Context) {
	draws, err := s.drawRepo.FindDue(ctx, time.Now())
	if err != nil {
		zap.L().Error("Failed to fetch due draws", zap.Error(err))
		return
	}
	if len(draws) == 0 {
		return
	}
	zap.L().Info("Found due draws", zap.Int("count", len(draws)))

	var g errgroup.Group
	for _, draw := range draws {
		draw := draw

		if _, loaded := processingDraws.LoadOrStore(draw.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDraws.Delete(draw.ID)
				return s.handleDraw(ctx, draw)
			})
			if err != nil {
				processingDraws.Delete(draw.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling due draws", zap.Error(err))
	}
}

// handleDraw executes one draw. Errors are logged and swallowed so one bad
// draw never blocks the rest of the batch; the draw stays pending and is
// retried on the next tick until it reaches a terminal status.
func (s *Service) handleDraw(ctx context.Context, draw domain.Draw) error {
	result, err := s.executor.Execute(ctx, draw.ID)
	if err != nil {
		zap.L().Error("Scheduled draw execution failed",
			zap.Int64("drawID", draw.ID), zap.Error(err))
		return nil
	}

	if result.NoEligible {
		zap.L().Warn("Scheduled draw had no eligible participants",
			zap.Int64("drawID", draw.ID))
		return nil
	}

	zap.L().Info("Scheduled draw executed",
		zap.Int64("drawID", draw.ID),
		zap.Strings("winners", result.Winners),
		zap.Int("count", len(result.Winners)))
	return nil
}
