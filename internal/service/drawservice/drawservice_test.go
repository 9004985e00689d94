package drawservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockDrawRepo, *MockItemRepo, *MockLPRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	drawRepo := NewMockDrawRepo(ctrl)
	itemRepo := NewMockItemRepo(ctrl)
	lpRepo := NewMockLPRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(drawRepo, itemRepo, lpRepo, txManager)
	defer ctrl.Finish()
	return service, drawRepo, itemRepo, lpRepo, txManager
}

func passthroughTX(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreate(t *testing.T) {
	service, drawRepo, itemRepo, _, txManager := NewMock(t)

	planTime := time.Date(2026, 1, 2, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		params        CreateParams
		prepareMock   func()
		expectedID    int64
		expectedError error
	}{
		{
			name: "Draw without item is inserted directly",
			params: CreateParams{
				CreatorQQ:    "10001",
				Num:          2,
				MinLPRequire: 100,
				PlanTime:     planTime,
			},
			prepareMock: func() {
				drawRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
			},
			expectedID:    11,
			expectedError: nil,
		},
		{
			name: "Draw with item reserves stock in one transaction",
			params: CreateParams{
				CreatorQQ:    "10001",
				ItemID:       int64Ptr(7),
				Num:          3,
				MinLPRequire: 100,
				PlanTime:     planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.ShopItem{
					ID: 7, Count: 5, Seller: "10001",
				}, nil)
				itemRepo.EXPECT().ReserveStock(gomock.Any(), int64(7), 3).Return(true, nil)
				drawRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
			},
			expectedID:    12,
			expectedError: nil,
		},
		{
			name: "Non-positive prize quantity is rejected",
			params: CreateParams{
				CreatorQQ: "10001",
				Num:       0,
				PlanTime:  planTime,
			},
			expectedError: ErrInvalidQuantity,
		},
		{
			name: "Negative LP threshold is rejected",
			params: CreateParams{
				CreatorQQ:    "10001",
				Num:          1,
				MinLPRequire: -1,
				PlanTime:     planTime,
			},
			expectedError: ErrInvalidThreshold,
		},
		{
			name: "Linked item does not exist",
			params: CreateParams{
				CreatorQQ: "10001",
				ItemID:    int64Ptr(99),
				Num:       1,
				PlanTime:  planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)
			},
			expectedError: ErrItemNotFound,
		},
		{
			name: "Stock below prize quantity",
			params: CreateParams{
				CreatorQQ: "10001",
				ItemID:    int64Ptr(7),
				Num:       10,
				PlanTime:  planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.ShopItem{
					ID: 7, Count: 5, Seller: "10001",
				}, nil)
			},
			expectedError: ErrInsufficientStock,
		},
		{
			name: "Item belongs to another seller",
			params: CreateParams{
				CreatorQQ: "10002",
				ItemID:    int64Ptr(7),
				Num:       1,
				PlanTime:  planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.ShopItem{
					ID: 7, Count: 5, Seller: "10001",
				}, nil)
			},
			expectedError: ErrNotItemOwner,
		},
		{
			name: "Concurrent reservation drains stock between read and decrement",
			params: CreateParams{
				CreatorQQ: "10001",
				ItemID:    int64Ptr(7),
				Num:       3,
				PlanTime:  planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.ShopItem{
					ID: 7, Count: 5, Seller: "10001",
				}, nil)
				itemRepo.EXPECT().ReserveStock(gomock.Any(), int64(7), 3).Return(false, nil)
			},
			expectedError: ErrInsufficientStock,
		},
		{
			name: "Insert failure rolls the transaction back",
			params: CreateParams{
				CreatorQQ: "10001",
				ItemID:    int64Ptr(7),
				Num:       1,
				PlanTime:  planTime,
			},
			prepareMock: func() {
				passthroughTX(txManager)
				itemRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.ShopItem{
					ID: 7, Count: 5, Seller: "10001",
				}, nil)
				itemRepo.EXPECT().ReserveStock(gomock.Any(), int64(7), 1).Return(true, nil)
				drawRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			id, err := service.Create(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	service, drawRepo, _, lpRepo, _ := NewMock(t)

	winners := "10002, 10003"

	tests := []struct {
		name           string
		drawID         int64
		prepareMock    func()
		expectedResult *ExecuteResult
		expectedError  error
	}{
		{
			name:   "Eligible participants produce winners",
			drawID: 1,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Draw{
					ID: 1, Num: 2, MinLPRequire: 100, Status: domain.DrawStatusPending,
				}, nil)
				lpRepo.EXPECT().ListEligible(gomock.Any(), 100).Return([]string{"10002", "10003"}, nil)
				drawRepo.EXPECT().MarkExecuted(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)
			},
			expectedResult: &ExecuteResult{Winners: []string{"10002", "10003"}},
		},
		{
			name:   "No eligible participants marks the draw unfillable",
			drawID: 2,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.Draw{
					ID: 2, Num: 1, MinLPRequire: 500, Status: domain.DrawStatusPending,
				}, nil)
				lpRepo.EXPECT().ListEligible(gomock.Any(), 500).Return(nil, nil)
				drawRepo.EXPECT().MarkUnfillable(gomock.Any(), int64(2)).Return(true, nil)
			},
			expectedResult: &ExecuteResult{NoEligible: true},
		},
		{
			name:   "Already executed draw replays its outcome",
			drawID: 3,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.Draw{
					ID: 3, Status: domain.DrawStatusExecuted, WinnerQQ: &winners,
				}, nil)
			},
			expectedResult: &ExecuteResult{Winners: []string{"10002", "10003"}},
		},
		{
			name:   "Already unfillable draw replays the empty outcome",
			drawID: 4,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&domain.Draw{
					ID: 4, Status: domain.DrawStatusUnfillable,
				}, nil)
			},
			expectedResult: &ExecuteResult{NoEligible: true},
		},
		{
			name:   "Concurrent execution commits first",
			drawID: 5,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Draw{
					ID: 5, Num: 1, MinLPRequire: 0, Status: domain.DrawStatusPending,
				}, nil)
				lpRepo.EXPECT().ListEligible(gomock.Any(), 0).Return([]string{"10002"}, nil)
				drawRepo.EXPECT().MarkExecuted(gomock.Any(), int64(5), gomock.Any()).Return(false, nil)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Draw{
					ID: 5, Status: domain.DrawStatusExecuted, WinnerQQ: &winners,
				}, nil)
			},
			expectedResult: &ExecuteResult{Winners: []string{"10002", "10003"}},
		},
		{
			name:   "Draw does not exist",
			drawID: 6,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, nil)
			},
			expectedError: ErrDrawNotFound,
		},
		{
			name:   "Eligibility query fails",
			drawID: 7,
			prepareMock: func() {
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&domain.Draw{
					ID: 7, Num: 1, Status: domain.DrawStatusPending,
				}, nil)
				lpRepo.EXPECT().ListEligible(gomock.Any(), 0).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Execute(context.Background(), tt.drawID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult.NoEligible, result.NoEligible)
				assert.ElementsMatch(t, tt.expectedResult.Winners, result.Winners)
			}
		})
	}
}

func TestSetWinner(t *testing.T) {
	service, drawRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		drawID        int64
		winnerQQ      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Winner is stamped",
			drawID:   1,
			winnerQQ: "10002",
			prepareMock: func() {
				drawRepo.EXPECT().SetWinner(gomock.Any(), int64(1), "10002").Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Draw does not exist",
			drawID:   2,
			winnerQQ: "10002",
			prepareMock: func() {
				drawRepo.EXPECT().SetWinner(gomock.Any(), int64(2), "10002").Return(false, nil)
			},
			expectedError: ErrDrawNotFound,
		},
		{
			name:     "Update fails",
			drawID:   3,
			winnerQQ: "10002",
			prepareMock: func() {
				drawRepo.EXPECT().SetWinner(gomock.Any(), int64(3), "10002").Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.SetWinner(context.Background(), tt.drawID, tt.winnerQQ)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, drawRepo, itemRepo, _, txManager := NewMock(t)

	tests := []struct {
		name             string
		drawID           int64
		prepareMock      func()
		expectedRestored int
		expectedError    error
	}{
		{
			name:   "Pending item-linked draw returns its stock",
			drawID: 1,
			prepareMock: func() {
				passthroughTX(txManager)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Draw{
					ID: 1, ItemID: int64Ptr(7), Num: 3, Status: domain.DrawStatusPending,
				}, nil)
				itemRepo.EXPECT().RestoreStock(gomock.Any(), int64(7), 3).Return(nil)
				drawRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
			},
			expectedRestored: 3,
		},
		{
			name:   "Executed draw keeps consumed stock",
			drawID: 2,
			prepareMock: func() {
				passthroughTX(txManager)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.Draw{
					ID: 2, ItemID: int64Ptr(7), Num: 3, Status: domain.DrawStatusExecuted,
				}, nil)
				drawRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(true, nil)
			},
			expectedRestored: 0,
		},
		{
			name:   "Pending draw without item has nothing to restore",
			drawID: 3,
			prepareMock: func() {
				passthroughTX(txManager)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.Draw{
					ID: 3, Num: 1, Status: domain.DrawStatusPending,
				}, nil)
				drawRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(true, nil)
			},
			expectedRestored: 0,
		},
		{
			name:   "Draw does not exist",
			drawID: 4,
			prepareMock: func() {
				passthroughTX(txManager)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, nil)
			},
			expectedError: ErrDrawNotFound,
		},
		{
			name:   "Restore failure aborts the delete",
			drawID: 5,
			prepareMock: func() {
				passthroughTX(txManager)
				drawRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.Draw{
					ID: 5, ItemID: int64Ptr(7), Num: 2, Status: domain.DrawStatusPending,
				}, nil)
				itemRepo.EXPECT().RestoreStock(gomock.Any(), int64(7), 2).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			restored, err := service.Delete(context.Background(), tt.drawID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRestored, restored)
			}
		})
	}
}

func TestListAll(t *testing.T) {
	service, drawRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedDraws []domain.Draw
		expectedError error
	}{
		{
			name: "Draws are returned",
			prepareMock: func() {
				drawRepo.EXPECT().FindAll(gomock.Any()).Return([]domain.Draw{{ID: 1}, {ID: 2}}, nil)
			},
			expectedDraws: []domain.Draw{{ID: 1}, {ID: 2}},
		},
		{
			name: "Query fails",
			prepareMock: func() {
				drawRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			draws, err := service.ListAll(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDraws, draws)
			}
		})
	}
}

func TestListPending(t *testing.T) {
	service, drawRepo, _, _, _ := NewMock(t)

	drawRepo.EXPECT().FindPending(gomock.Any()).Return([]domain.Draw{{ID: 9, Status: domain.DrawStatusPending}}, nil)

	draws, err := service.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, draws, 1)
	assert.Equal(t, domain.DrawStatusPending, draws[0].Status)
}

func TestListWins(t *testing.T) {
	service, drawRepo, _, _, _ := NewMock(t)

	winners := "10002, 10003"
	drawRepo.EXPECT().FindWinsByUser(gomock.Any(), "10002").Return([]domain.Draw{
		{ID: 1, Status: domain.DrawStatusExecuted, WinnerQQ: &winners},
	}, nil)

	draws, err := service.ListWins(context.Background(), "10002")
	assert.NoError(t, err)
	assert.Len(t, draws, 1)
	assert.Contains(t, draws[0].Winners(), "10002")
}
