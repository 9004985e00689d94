package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	drawrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/draw-repo"
	itemrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/item-repo"
	lprepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/lp-repo"
	userrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.DrawRepo)
	assert.NotNil(t, repo.ItemRepo)
	assert.NotNil(t, repo.LPRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &drawrepo.Repository{}, repo.DrawRepo)
	assert.IsType(t, &itemrepo.Repository{}, repo.ItemRepo)
	assert.IsType(t, &lprepo.Repository{}, repo.LPRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
