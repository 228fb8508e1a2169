package service

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TeamService struct {
	teamRepository ports.TeamRepository
}

func NewTeamService(teamRepository ports.TeamRepository) *TeamService {
	return &TeamService{teamRepository: teamRepository}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepository.List(ctx)
}

func (s *TeamService) GetTeam(ctx context.Context, id uint64) (domain.Team, error) {
	return s.teamRepository.GetByID(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	return s.teamRepository.Create(ctx, input)
}

func (s *TeamService) UpdateTeam(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error) {
	return s.teamRepository.Update(ctx, input)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) (domain.Team, error) {
	return s.teamRepository.Delete(ctx, id)
}

func (s *TeamService) AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	return s.teamRepository.AddMember(ctx, input)
}

func (s *TeamService) RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	return s.teamRepository.RemoveMember(ctx, input)
}

var _ ports.TeamService = (*TeamService)(nil)
