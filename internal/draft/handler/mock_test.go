package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rsheln/combine-draft/internal/draft/model"
	"github.com/rsheln/combine-draft/internal/draft/service"
	playerModel "github.com/rsheln/combine-draft/internal/player/model"
)

type mockService struct {
	mock.Mock
}

var _ service.Service = (*mockService)(nil)

func (m *mockService) Create(ctx context.Context, userID string, req *model.CreateDraftRequest) (*model.Draft, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, draftID string) (*model.DraftDetail, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DraftDetail), args.Error(1)
}

func (m *mockService) List(ctx context.Context, eventID, leagueID string) ([]model.Draft, error) {
	args := m.Called(ctx, eventID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Draft), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, userID, draftID string, req *model.UpdateDraftRequest) (*model.Draft, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, userID, draftID string) error {
	args := m.Called(ctx, userID, draftID)
	return args.Error(0)
}

func (m *mockService) Start(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	args := m.Called(ctx, userID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *mockService) Pause(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	args := m.Called(ctx, userID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *mockService) Resume(ctx context.Context, userID, draftID string) (*model.Draft, error) {
	args := m.Called(ctx, userID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Draft), args.Error(1)
}

func (m *mockService) AddTeam(ctx context.Context, userID, draftID string, req *model.CreateTeamRequest) (*model.Team, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockService) ListTeams(ctx context.Context, draftID string) ([]model.Team, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockService) UpdateTeam(ctx context.Context, userID, draftID, teamID string, req *model.UpdateTeamRequest) (*model.Team, error) {
	args := m.Called(ctx, userID, draftID, teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockService) RemoveTeam(ctx context.Context, userID, draftID, teamID string) error {
	args := m.Called(ctx, userID, draftID, teamID)
	return args.Error(0)
}

func (m *mockService) ReorderTeams(ctx context.Context, userID, draftID string, req *model.ReorderTeamsRequest) ([]model.Team, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockService) AddPreSlot(ctx context.Context, userID, draftID string, req *model.PreSlotRequest) (*model.Team, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockService) RemovePreSlot(ctx context.Context, userID, draftID, teamID, playerID string) (*model.Team, error) {
	args := m.Called(ctx, userID, draftID, teamID, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *mockService) MakePick(ctx context.Context, userID, draftID string, req *model.MakePickRequest) (*model.Pick, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pick), args.Error(1)
}

func (m *mockService) AutoPick(ctx context.Context, draftID string) (*model.Pick, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pick), args.Error(1)
}

func (m *mockService) UndoLastPick(ctx context.Context, userID, draftID string) (*model.UndoPickResponse, error) {
	args := m.Called(ctx, userID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UndoPickResponse), args.Error(1)
}

func (m *mockService) ListPicks(ctx context.Context, draftID string) ([]model.Pick, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pick), args.Error(1)
}

func (m *mockService) AvailablePlayers(ctx context.Context, draftID string) ([]playerModel.Player, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]playerModel.Player), args.Error(1)
}

func (m *mockService) DraftedPlayers(ctx context.Context, draftID string) ([]model.DraftedPlayer, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DraftedPlayer), args.Error(1)
}

func (m *mockService) GetRankings(ctx context.Context, userID, draftID string) (*model.CoachRanking, error) {
	args := m.Called(ctx, userID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CoachRanking), args.Error(1)
}

func (m *mockService) SaveRankings(ctx context.Context, userID, draftID string, req *model.SaveRankingsRequest) (*model.CoachRanking, error) {
	args := m.Called(ctx, userID, draftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CoachRanking), args.Error(1)
}
