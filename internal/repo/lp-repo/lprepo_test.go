package lprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_ListEligible(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		minLP     int
		mockSetup func()
		expectErr bool
		result    []string
	}{
		{
			name:  "Users above the floor",
			minLP: 100,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"qq"}).
					AddRow("10001").
					AddRow("10002")
				mock.ExpectQuery(regexp.QuoteMeta("WHERE total_lp >= $1")).
					WithArgs(100).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []string{"10001", "10002"},
		},
		{
			name:  "Nobody qualifies",
			minLP: 100000,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE total_lp >= $1")).
					WithArgs(100000).
					WillReturnRows(pgxmock.NewRows([]string{"qq"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			minLP: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE total_lp >= $1")).
					WithArgs(100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListEligible(context.Background(), tt.minLP)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
