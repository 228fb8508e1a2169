package mapper

import (
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	return list(users, ToUserItem)
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Department:  user.Department,
		Avatar:      user.Avatar,
		Preferences: user.Preferences,
		CreatedAt:   formatTime(user.CreatedAt),
		UpdatedAt:   formatTime(user.UpdatedAt),

		CreatedTasks:    relation(user.CreatedTasks, ToTaskItem),
		AssignedTasks:   relation(user.AssignedTasks, ToTaskItem),
		TeamLeading:     relation(user.TeamsLed, ToTeamItem),
		TeamMemberships: relation(user.TeamMemberships, ToTeamItem),
	}
}
