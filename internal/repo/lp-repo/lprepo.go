package lprepo

import (
	"context"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the user_lp_summary view, the materialized eligibility
// source. This repo never writes.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// ListEligible returns every identity whose approved LP total meets the floor.
func (r *Repository) ListEligible(ctx context.Context, minLP int) ([]string, error) {
	query := `
        SELECT qq
        FROM user_lp_summary
        WHERE total_lp >= $1
    `
	rows, err := r.db.Query(ctx, query, minLP)
	if err != nil {
		zap.L().Error("can't get eligible users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var qq string
		if err := rows.Scan(&qq); err != nil {
			zap.L().Error("can't scan eligible user row", zap.Error(err))
			return nil, err
		}
		users = append(users, qq)
	}
	return users, nil
}
