package drawservice

import (
	"context"
	"errors"
	"time"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	"go.uber.org/zap"
)

type DrawRepo interface {
	Create(ctx context.Context, draw *domain.Draw) (int64, error)
	GetByID(ctx context.Context, drawID int64) (*domain.Draw, error)
	FindAll(ctx context.Context) ([]domain.Draw, error)
	FindPending(ctx context.Context) ([]domain.Draw, error)
	FindDue(ctx context.Context, now time.Time) ([]domain.Draw, error)
	FindWinsByUser(ctx context.Context, userQQ string) ([]domain.Draw, error)
	MarkExecuted(ctx context.Context, drawID int64, winners string) (bool, error)
	MarkUnfillable(ctx context.Context, drawID int64) (bool, error)
	SetWinner(ctx context.Context, drawID int64, winnerQQ string) (bool, error)
	Delete(ctx context.Context, drawID int64) (bool, error)
}

type ItemRepo interface {
	GetByID(ctx context.Context, itemID int64) (*domain.ShopItem, error)
	ReserveStock(ctx context.Context, itemID int64, count int) (bool, error)
	RestoreStock(ctx context.Context, itemID int64, count int) error
}

type LPRepo interface {
	ListEligible(ctx context.Context, minLP int) ([]string, error)
}

var (
	ErrDrawNotFound      = errors.New("draw not found")
	ErrItemNotFound      = errors.New("shop item not found")
	ErrInsufficientStock = errors.New("insufficient item stock")
	ErrNotItemOwner      = errors.New("draws may only use the creator's own items")
	ErrInvalidQuantity   = errors.New("prize quantity must be positive")
	ErrInvalidThreshold  = errors.New("minimum LP requirement must not be negative")
)

type CreateParams struct {
	CreatorQQ    string
	ItemID       *int64
	Fitting      *string
	Num          int
	MinLPRequire int
	PlanTime     time.Time
	Description  *string
}

// ExecuteResult is the outcome of a draw execution. NoEligible marks a draw
// that ended without qualifying participants; it is not an error.
type ExecuteResult struct {
	Winners    []string
	NoEligible bool
}

type Service struct {
	drawRepo  DrawRepo
	itemRepo  ItemRepo
	lpRepo    LPRepo
	txManager pg.TXManager
}

func New(drawRepo DrawRepo, itemRepo ItemRepo, lpRepo LPRepo, txManager pg.TXManager) *Service {
	return &Service{
		drawRepo:  drawRepo,
		itemRepo:  itemRepo,
		lpRepo:    lpRepo,
		txManager: txManager,
	}
}

// Create registers a new pending draw. When an item is linked, the stock
// reservation and the draw insert commit as one transaction: either the item
// loses Num units and the draw exists, or neither happened.
func (s *Service) Create(ctx context.Context, p CreateParams) (int64, error) {
	if p.Num <= 0 {
		return 0, ErrInvalidQuantity
	}
	if p.MinLPRequire < 0 {
		return 0, ErrInvalidThreshold
	}

	draw := &domain.Draw{
		CreateTime:   time.Now(),
		CreatorQQ:    p.CreatorQQ,
		ItemID:       p.ItemID,
		Fitting:      p.Fitting,
		Num:          p.Num,
		MinLPRequire: p.MinLPRequire,
		PlanTime:     p.PlanTime,
		Status:       domain.DrawStatusPending,
		Description:  p.Description,
	}

	if p.ItemID == nil {
		id, err := s.drawRepo.Create(ctx, draw)
		if err != nil {
			zap.L().Error("failed to create draw", zap.Error(err))
			return 0, err
		}
		return id, nil
	}

	var drawID int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.itemRepo.GetByID(ctx, *p.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Count < p.Num {
			return ErrInsufficientStock
		}
		if item.Seller != p.CreatorQQ {
			return ErrNotItemOwner
		}

		// The read above is advisory; the guarded decrement is what actually
		// resolves races with concurrent purchases or other draws.
		ok, err := s.itemRepo.ReserveStock(ctx, *p.ItemID, p.Num)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientStock
		}

		drawID, err = s.drawRepo.Create(ctx, draw)
		return err
	})
	if err != nil {
		zap.L().Error("failed to create draw with item", zap.Int64("itemID", *p.ItemID), zap.Error(err))
		return 0, err
	}

	zap.L().Info("draw created with reserved stock",
		zap.Int64("drawID", drawID), zap.Int64("itemID", *p.ItemID), zap.Int("count", p.Num))
	return drawID, nil
}

// Execute runs the draw once. Both the scheduler and manual triggers call it;
// a draw that is no longer pending replays its committed outcome instead of
// selecting again.
func (s *Service) Execute(ctx context.Context, drawID int64) (*ExecuteResult, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		return nil, err
	}
	if draw == nil {
		return nil, ErrDrawNotFound
	}
	if draw.Status != domain.DrawStatusPending {
		return priorOutcome(draw), nil
	}

	eligible, err := s.lpRepo.ListEligible(ctx, draw.MinLPRequire)
	if err != nil {
		zap.L().Error("failed to query eligible participants", zap.Int64("drawID", drawID), zap.Error(err))
		return nil, err
	}

	if len(eligible) == 0 {
		ok, err := s.drawRepo.MarkUnfillable(ctx, drawID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return s.replayOutcome(ctx, drawID)
		}
		zap.L().Warn("draw has no eligible participants", zap.Int64("drawID", drawID))
		return &ExecuteResult{NoEligible: true}, nil
	}

	winners := selectWinners(eligible, draw.Num, drawSeed(drawID))

	ok, err := s.drawRepo.MarkExecuted(ctx, drawID, domain.JoinWinners(winners))
	if err != nil {
		return nil, err
	}
	if !ok {
		// a concurrent execution committed first; its outcome stands
		return s.replayOutcome(ctx, drawID)
	}

	zap.L().Info("draw executed",
		zap.Int64("drawID", drawID), zap.Strings("winners", winners))
	return &ExecuteResult{Winners: winners}, nil
}

func priorOutcome(draw *domain.Draw) *ExecuteResult {
	if draw.Status == domain.DrawStatusUnfillable {
		return &ExecuteResult{NoEligible: true}
	}
	return &ExecuteResult{Winners: draw.Winners()}
}

func (s *Service) replayOutcome(ctx context.Context, drawID int64) (*ExecuteResult, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		return nil, err
	}
	if draw == nil {
		return nil, ErrDrawNotFound
	}
	return priorOutcome(draw), nil
}

// SetWinner is the administrative override: it stamps a single winner without
// consulting eligibility or inventory.
func (s *Service) SetWinner(ctx context.Context, drawID int64, winnerQQ string) error {
	ok, err := s.drawRepo.SetWinner(ctx, drawID, winnerQQ)
	if err != nil {
		zap.L().Error("failed to set draw winner", zap.Int64("drawID", drawID), zap.Error(err))
		return err
	}
	if !ok {
		return ErrDrawNotFound
	}
	zap.L().Info("draw winner set manually", zap.Int64("drawID", drawID), zap.String("winner", winnerQQ))
	return nil
}

// Delete removes a draw. A still-pending, item-linked draw gives its reserved
// stock back; the returned count is the restored quantity (zero otherwise).
func (s *Service) Delete(ctx context.Context, drawID int64) (int, error) {
	var restored int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		draw, err := s.drawRepo.GetByID(ctx, drawID)
		if err != nil {
			return err
		}
		if draw == nil {
			return ErrDrawNotFound
		}

		if draw.Status == domain.DrawStatusPending && draw.ItemID != nil {
			if err := s.itemRepo.RestoreStock(ctx, *draw.ItemID, draw.Num); err != nil {
				return err
			}
			restored = draw.Num
			zap.L().Info("restored reserved stock",
				zap.Int64("drawID", drawID), zap.Int64("itemID", *draw.ItemID), zap.Int("count", draw.Num))
		}

		ok, err := s.drawRepo.Delete(ctx, drawID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDrawNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return restored, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Draw, error) {
	draws, err := s.drawRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list draws", zap.Error(err))
		return nil, err
	}
	return draws, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Draw, error) {
	draws, err := s.drawRepo.FindPending(ctx)
	if err != nil {
		zap.L().Error("failed to list pending draws", zap.Error(err))
		return nil, err
	}
	return draws, nil
}

func (s *Service) ListWins(ctx context.Context, userQQ string) ([]domain.Draw, error) {
	draws, err := s.drawRepo.FindWinsByUser(ctx, userQQ)
	if err != nil {
		zap.L().Error("failed to list user wins", zap.Error(err))
		return nil, err
	}
	return draws, nil
}
