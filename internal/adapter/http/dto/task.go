package dto

import (
	"bytes"
	"encoding/json"
)

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline,omitempty"`
	CreatedByID uint64  `json:"createdById"`
	TeamID      uint64  `json:"teamId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`

	CreatedBy *UserItem      `json:"createdBy,omitempty"`
	Team      *TeamItem      `json:"team,omitempty"`
	Assignees *[]UserItem    `json:"assignees,omitempty"`
	Tags      *[]TagItem     `json:"tags,omitempty"`
	Comments  *[]CommentItem `json:"comments,omitempty"`
}

type CommentItem struct {
	ID        uint64    `json:"id"`
	TaskID    uint64    `json:"taskId"`
	UserID    uint64    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"createdAt"`
	Task      *TaskItem `json:"task,omitempty"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=1"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitnil,oneof=PENDING IN_PROGRESS REVIEW COMPLETED"`
	Priority    *string  `json:"priority" binding:"omitnil,oneof=LOW MEDIUM HIGH URGENT"`
	Deadline    *string  `json:"deadline" binding:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	CreatedByID uint64   `json:"createdById" binding:"required"`
	TeamID      uint64   `json:"teamId" binding:"required"`
	AssigneeIDs []uint64 `json:"assigneeIds" binding:"omitempty,dive,gt=0"`
	TagIDs      []uint64 `json:"tagIds" binding:"omitempty,dive,gt=0"`
}

type UpdateTaskRequest struct {
	ID          uint64   `json:"id" binding:"required"`
	Title       *string  `json:"title" binding:"omitnil,min=1"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitnil,oneof=PENDING IN_PROGRESS REVIEW COMPLETED"`
	Priority    *string  `json:"priority" binding:"omitnil,oneof=LOW MEDIUM HIGH URGENT"`
	Deadline    *string  `json:"deadline" binding:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	AssigneeIDs []uint64 `json:"assigneeIds" binding:"omitempty,dive,gt=0"`
	TagIDs      []uint64 `json:"tagIds" binding:"omitempty,dive,gt=0"`
}

type UpdateTaskStatusRequest struct {
	ID     uint64 `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS REVIEW COMPLETED"`
}

type TaskIDRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

type TasksByTeamRequest struct {
	TeamID uint64 `json:"teamId" binding:"required"`
}

type CreateCommentRequest struct {
	TaskID  uint64 `json:"taskId" binding:"required"`
	UserID  uint64 `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required,min=1"`
}

// TasksByStatusRequest accepts either a bare status string or {"status": ...}.
type TasksByStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS REVIEW COMPLETED"`
}

func (r *TasksByStatusRequest) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return json.Unmarshal(data, &r.Status)
	}
	type plain TasksByStatusRequest
	return json.Unmarshal(data, (*plain)(r))
}

// TasksByPriorityRequest accepts either a bare priority string or {"priority": ...}.
type TasksByPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH URGENT"`
}

func (r *TasksByPriorityRequest) UnmarshalJSON(data []byte) error {
	if isJSONString(data) {
		return json.Unmarshal(data, &r.Priority)
	}
	type plain TasksByPriorityRequest
	return json.Unmarshal(data, (*plain)(r))
}

func isJSONString(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '"'
}
