package mapper

import (
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func ToTeamItems(teams []domain.Team) []dto.TeamItem {
	return list(teams, ToTeamItem)
}

func ToTeamItem(team domain.Team) dto.TeamItem {
	item := dto.TeamItem{
		ID:        team.ID,
		Name:      team.Name,
		LeadID:    team.LeadID,
		CreatedAt: formatTime(team.CreatedAt),
		UpdatedAt: formatTime(team.UpdatedAt),
		Members:   relation(team.Members, ToUserItem),
		Tasks:     relation(team.Tasks, ToTaskItem),
	}
	if team.Lead != nil {
		lead := ToUserItem(*team.Lead)
		item.Lead = &lead
	}
	return item
}
