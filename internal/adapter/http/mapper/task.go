package mapper

import (
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	return list(tasks, ToTaskItem)
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedByID: task.CreatedByID,
		TeamID:      task.TeamID,
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),

		Assignees: relation(task.Assignees, ToUserItem),
		Tags:      relation(task.Tags, ToTagItem),
		Comments:  relation(task.Comments, ToCommentItem),
	}

	if task.Deadline != nil {
		value := formatTime(*task.Deadline)
		item.Deadline = &value
	}

	if task.CreatedBy != nil {
		creator := ToUserItem(*task.CreatedBy)
		item.CreatedBy = &creator
	}

	if task.Team != nil {
		team := ToTeamItem(*task.Team)
		item.Team = &team
	}

	return item
}

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	return list(comments, ToCommentItem)
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	item := dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: formatTime(comment.CreatedAt),
	}
	if comment.Task != nil {
		task := ToTaskItem(*comment.Task)
		item.Task = &task
	}
	return item
}
