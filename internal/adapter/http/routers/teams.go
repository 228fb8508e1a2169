package routers

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/mapper"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/procedure"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/validation"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

func NewTeamRouter(svc ports.TeamService) *procedure.Router {
	return procedure.NewRouter().
		Query("getTeams", procedure.HandleNoInput(func(ctx context.Context) ([]dto.TeamItem, error) {
			teams, err := svc.ListTeams(ctx)
			if err != nil {
				return nil, err
			}
			return mapper.ToTeamItems(teams), nil
		})).
		Query("getTeamById", procedure.Handle(func(ctx context.Context, req dto.TeamIDRequest) (dto.TeamItem, error) {
			return teamItem(svc.GetTeam(ctx, req.ID))
		})).
		Mutation("createTeam", procedure.Handle(func(ctx context.Context, req dto.CreateTeamRequest) (dto.TeamItem, error) {
			return teamItem(svc.CreateTeam(ctx, validation.BuildCreateTeamInput(req)))
		})).
		Mutation("updateTeam", procedure.Handle(func(ctx context.Context, req dto.UpdateTeamRequest) (dto.TeamItem, error) {
			return teamItem(svc.UpdateTeam(ctx, validation.BuildUpdateTeamInput(req)))
		})).
		Mutation("deleteTeam", procedure.Handle(func(ctx context.Context, req dto.TeamIDRequest) (dto.TeamItem, error) {
			return teamItem(svc.DeleteTeam(ctx, req.ID))
		})).
		Mutation("addTeamMember", procedure.Handle(func(ctx context.Context, req dto.TeamMemberRequest) (dto.TeamItem, error) {
			return teamItem(svc.AddMember(ctx, validation.BuildTeamMemberInput(req)))
		})).
		Mutation("removeTeamMember", procedure.Handle(func(ctx context.Context, req dto.TeamMemberRequest) (dto.TeamItem, error) {
			return teamItem(svc.RemoveMember(ctx, validation.BuildTeamMemberInput(req)))
		}))
}

func teamItem(team domain.Team, err error) (dto.TeamItem, error) {
	if err != nil {
		return dto.TeamItem{}, err
	}
	return mapper.ToTeamItem(team), nil
}
