package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByQQ(t *testing.T) {
	repo, mock := NewMock(t)
	roleID := 2

	tests := []struct {
		name      string
		qq        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			qq:   "10001",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"qq", "main_role_id", "nickname", "password"}).
					AddRow("10001", &roleID, "pilot", "$2a$10$hash")
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("10001").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				QQ: "10001", MainRoleID: &roleID, Nickname: "pilot", PasswordHash: "$2a$10$hash",
			},
		},
		{
			name: "User does not exist",
			qq:   "99999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("99999").
					WillReturnRows(pgxmock.NewRows([]string{"qq", "main_role_id", "nickname", "password"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			qq:   "10001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("10001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByQQ(context.Background(), tt.qq)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListPermissions(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		qq        string
		mockSetup func()
		expectErr bool
		result    []string
	}{
		{
			name: "Role grants permissions",
			qq:   "10001",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"permission_name"}).
					AddRow("launch_draw").
					AddRow("view_logs")
				mock.ExpectQuery(regexp.QuoteMeta("JOIN rolepermissionlink rpl ON rpl.role_id = u.main_role_id")).
					WithArgs("10001").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    []string{"launch_draw", "view_logs"},
		},
		{
			name: "No role or empty grant",
			qq:   "10002",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN rolepermissionlink rpl ON rpl.role_id = u.main_role_id")).
					WithArgs("10002").
					WillReturnRows(pgxmock.NewRows([]string{"permission_name"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			qq:   "10001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("JOIN rolepermissionlink rpl ON rpl.role_id = u.main_role_id")).
					WithArgs("10001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListPermissions(context.Background(), tt.qq)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
