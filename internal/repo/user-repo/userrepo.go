package userrepo

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

func (r *Repository) FindByQQ(ctx context.Context, qq string) (*domain.User, error) {
	query := `
        SELECT qq, main_role_id, nickname, password
        FROM users
        WHERE qq = $1
    `
	row := r.db.QueryRow(ctx, query, qq)
	var user domain.User
	err := row.Scan(&user.QQ, &user.MainRoleID, &user.Nickname, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListPermissions resolves the permission names granted through the user's role.
func (r *Repository) ListPermissions(ctx context.Context, qq string) ([]string, error) {
	query := `
        SELECT rpl.permission_name
        FROM users u
        JOIN rolepermissionlink rpl ON rpl.role_id = u.main_role_id
        WHERE u.qq = $1
    `
	rows, err := r.db.Query(ctx, query, qq)
	if err != nil {
		zap.L().Error("can't get user permissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var perms []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			zap.L().Error("can't scan permission row", zap.Error(err))
			return nil, err
		}
		perms = append(perms, name)
	}
	return perms, nil
}
