package itemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, itemID int64) (*domain.ShopItem, error) {
	query := `
        SELECT id, count, price, name, seller, location
        FROM shopitems
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, itemID)
	var item domain.ShopItem
	err := row.Scan(&item.ID, &item.Count, &item.Price, &item.Name, &item.Seller, &item.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shop item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// ReserveStock decrements stock only while enough remains; the predicate inside
// the UPDATE is the race-resolution point against concurrent purchases or draws.
// Returns false when the guard rejected the write.
func (r *Repository) ReserveStock(ctx context.Context, itemID int64, count int) (bool, error) {
	query := `
        UPDATE shopitems
        SET count = count - $1
        WHERE id = $2 AND count >= $1
    `
	tag, err := r.db.Exec(ctx, query, count, itemID)
	if err != nil {
		zap.L().Error("can't reserve item stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RestoreStock returns a reservation to inventory.
func (r *Repository) RestoreStock(ctx context.Context, itemID int64, count int) error {
	query := `
        UPDATE shopitems
        SET count = count + $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, count, itemID); err != nil {
		zap.L().Error("can't restore item stock", zap.Error(err))
		return err
	}
	return nil
}
