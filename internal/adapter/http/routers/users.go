package routers

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/mapper"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/procedure"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/validation"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

func NewUserRouter(svc ports.UserService) *procedure.Router {
	return procedure.NewRouter().
		Query("getUsers", procedure.HandleNoInput(func(ctx context.Context) ([]dto.UserItem, error) {
			users, err := svc.ListUsers(ctx)
			if err != nil {
				return nil, err
			}
			return mapper.ToUserItems(users), nil
		})).
		Query("getUserById", procedure.Handle(func(ctx context.Context, req dto.UserIDRequest) (dto.UserItem, error) {
			user, err := svc.GetUser(ctx, req.ID)
			if err != nil {
				return dto.UserItem{}, err
			}
			return mapper.ToUserItem(user), nil
		})).
		Mutation("addUser", procedure.Handle(func(ctx context.Context, req dto.CreateUserRequest) (dto.UserItem, error) {
			user, err := svc.CreateUser(ctx, validation.BuildCreateUserInput(req))
			if err != nil {
				return dto.UserItem{}, err
			}
			return mapper.ToUserItem(user), nil
		})).
		Mutation("updateUser", procedure.Handle(func(ctx context.Context, req dto.UpdateUserRequest) (dto.UserItem, error) {
			user, err := svc.UpdateUser(ctx, validation.BuildUpdateUserInput(req))
			if err != nil {
				return dto.UserItem{}, err
			}
			return mapper.ToUserItem(user), nil
		})).
		Mutation("deleteUser", procedure.Handle(func(ctx context.Context, req dto.UserIDRequest) (dto.UserItem, error) {
			user, err := svc.DeleteUser(ctx, req.ID)
			if err != nil {
				return dto.UserItem{}, err
			}
			return mapper.ToUserItem(user), nil
		})).
		Query("getUserTasks", procedure.Handle(func(ctx context.Context, req dto.UserIDRequest) ([]dto.TaskItem, error) {
			tasks, err := svc.ListAssignedTasks(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			return mapper.ToTaskItems(tasks), nil
		})).
		Query("getUserTeamsLed", procedure.Handle(func(ctx context.Context, req dto.UserIDRequest) ([]dto.TeamItem, error) {
			teams, err := svc.ListTeamsLed(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			return mapper.ToTeamItems(teams), nil
		})).
		Query("getUserTeams", procedure.Handle(func(ctx context.Context, req dto.UserIDRequest) ([]dto.TeamItem, error) {
			teams, err := svc.ListMemberTeams(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			return mapper.ToTeamItems(teams), nil
		}))
}
