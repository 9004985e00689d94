package drawrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const drawColumns = `id, create_time, create_qq, item_id, fitting, num, min_lp_require, plan_time, status, winner_qq, description`

func scanDraw(row pgx.Row, draw *domain.Draw) error {
	return row.Scan(
		&draw.ID, &draw.CreateTime, &draw.CreatorQQ, &draw.ItemID, &draw.Fitting,
		&draw.Num, &draw.MinLPRequire, &draw.PlanTime, &draw.Status, &draw.WinnerQQ, &draw.Description,
	)
}

func (r *Repository) Create(ctx context.Context, draw *domain.Draw) (int64, error) {
	query := `
        INSERT INTO luckydrawlog (create_time, create_qq, item_id, fitting, num, min_lp_require, plan_time, status, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8)
        RETURNING id
    `
	var id int64
	row := r.db.QueryRow(ctx, query,
		draw.CreateTime, draw.CreatorQQ, draw.ItemID, draw.Fitting,
		draw.Num, draw.MinLPRequire, draw.PlanTime, draw.Description,
	)
	if err := row.Scan(&id); err != nil {
		zap.L().Error("can't create draw", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, drawID int64) (*domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM luckydrawlog
        WHERE id = $1
    `
	var draw domain.Draw
	err := scanDraw(r.db.QueryRow(ctx, query, drawID), &draw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find draw", zap.Error(err))
		return nil, err
	}
	return &draw, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM luckydrawlog
        ORDER BY create_time DESC
    `
	return r.queryDraws(ctx, query)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM luckydrawlog
        WHERE status = 0
        ORDER BY plan_time ASC
    `
	return r.queryDraws(ctx, query)
}

// FindDue returns pending draws whose plan time has passed, earliest first.
func (r *Repository) FindDue(ctx context.Context, now time.Time) ([]domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM luckydrawlog
        WHERE status = 0 AND plan_time <= $1
        ORDER BY plan_time ASC
    `
	return r.queryDraws(ctx, query, now)
}

func (r *Repository) FindWinsByUser(ctx context.Context, userQQ string) ([]domain.Draw, error) {
	query := `
        SELECT ` + drawColumns + `
        FROM luckydrawlog
        WHERE winner_qq IS NOT NULL AND $1 = ANY(string_to_array(winner_qq, ', '))
        ORDER BY create_time DESC
    `
	return r.queryDraws(ctx, query, userQQ)
}

func (r *Repository) queryDraws(ctx context.Context, query string, args ...interface{}) ([]domain.Draw, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get draws", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var draws []domain.Draw
	for rows.Next() {
		var draw domain.Draw
		if err := scanDraw(rows, &draw); err != nil {
			zap.L().Error("can't scan draw row", zap.Error(err))
			return nil, err
		}
		draws = append(draws, draw)
	}
	return draws, nil
}

// MarkExecuted transitions a pending draw to executed with the given winner list.
// Returns false if the draw was no longer pending, leaving the prior outcome intact.
func (r *Repository) MarkExecuted(ctx context.Context, drawID int64, winners string) (bool, error) {
	query := `
        UPDATE luckydrawlog
        SET status = 1, winner_qq = $1
        WHERE id = $2 AND status = 0
    `
	tag, err := r.db.Exec(ctx, query, winners, drawID)
	if err != nil {
		zap.L().Error("can't mark draw executed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkUnfillable transitions a pending draw to the unfillable terminal state.
func (r *Repository) MarkUnfillable(ctx context.Context, drawID int64) (bool, error) {
	query := `
        UPDATE luckydrawlog
        SET status = 2
        WHERE id = $1 AND status = 0
    `
	tag, err := r.db.Exec(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't mark draw unfillable", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetWinner is the administrative override: it stamps the winner and executed
// status regardless of the draw's current state.
func (r *Repository) SetWinner(ctx context.Context, drawID int64, winnerQQ string) (bool, error) {
	query := `
        UPDATE luckydrawlog
        SET status = 1, winner_qq = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, winnerQQ, drawID)
	if err != nil {
		zap.L().Error("can't set draw winner", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, drawID int64) (bool, error) {
	query := `
        DELETE FROM luckydrawlog
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, drawID)
	if err != nil {
		zap.L().Error("can't delete draw", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
