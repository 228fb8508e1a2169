package routers

import (
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/procedure"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

// NewAppRouter merges the entity routers into the single procedure namespace.
func NewAppRouter(users ports.UserService, tasks ports.TaskService, teams ports.TeamService, tags ports.TagService) *procedure.Router {
	return procedure.NewRouter().
		Merge("userRouter", NewUserRouter(users)).
		Merge("taskRouter", NewTaskRouter(tasks)).
		Merge("teamRouter", NewTeamRouter(teams)).
		Merge("tagRouter", NewTagRouter(tags))
}
