package goal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finny-ledger/internal/goal"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	svc := goal.NewService(repo)

	repo.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *goal.Goal) error {
			assert.True(t, g.Progress.Equal(decimal.NewFromInt(25)))
			assert.False(t, g.IsCompleted)

			g.ID = uuid.New()

			return nil
		})

	got, err := svc.Create(context.Background(), uuid.New(), goal.CreateParams{
		Name:          "Holiday",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(500),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestService_Update(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	existing := func() *goal.Goal {
		return &goal.Goal{
			ID:            id,
			OwnerID:       owner,
			Name:          "Car",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(100),
			Progress:      decimal.NewFromInt(10),
		}
	}

	type testCase struct {
		name          string
		params        goal.UpdateParams
		wantProgress  string
		wantCompleted bool
	}

	current := decimal.NewFromInt(1200)
	target := decimal.NewFromInt(400)
	name := "New car"

	tests := []testCase{
		{
			name:          "CurrentAmountPastTarget",
			params:        goal.UpdateParams{CurrentAmount: &current},
			wantProgress:  "100",
			wantCompleted: true,
		},
		{
			name:         "TargetAmountChanged",
			params:       goal.UpdateParams{TargetAmount: &target},
			wantProgress: "25",
		},
		{
			name:         "NameOnlyKeepsStoredProgress",
			params:       goal.UpdateParams{Name: &name},
			wantProgress: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			svc := goal.NewService(repo)

			repo.EXPECT().GetGoal(gomock.Any(), id, owner).Return(existing(), nil)
			repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

			got, err := svc.Update(context.Background(), id, owner, tt.params)
			require.NoError(t, err)
			assert.Truef(t, decimal.RequireFromString(tt.wantProgress).Equal(got.Progress),
				"progress: want %s, got %s", tt.wantProgress, got.Progress)
			assert.Equal(t, tt.wantCompleted, got.IsCompleted)
		})
	}
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	svc := goal.NewService(repo)

	repo.EXPECT().GetGoal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, goal.ErrNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), goal.UpdateParams{})
	assert.ErrorIs(t, err, goal.ErrNotFound)
}

func TestService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	svc := goal.NewService(repo)

	repo.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	got, err := svc.Create(context.Background(), uuid.New(), goal.CreateParams{})
	assert.Error(t, err)
	assert.Nil(t, got)
}
