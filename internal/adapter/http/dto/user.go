package dto

import "github.com/dontforgetsemicologne/task-flow/internal/core/domain"

type UserItem struct {
	ID          uint64             `json:"id"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	Department  *string            `json:"department,omitempty"`
	Avatar      *string            `json:"avatar,omitempty"`
	Preferences domain.Preferences `json:"preferences,omitempty"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`

	CreatedTasks    *[]TaskItem `json:"createdTasks,omitempty"`
	AssignedTasks   *[]TaskItem `json:"assignedTasks,omitempty"`
	TeamLeading     *[]TeamItem `json:"teamLeading,omitempty"`
	TeamMemberships *[]TeamItem `json:"teamMemberships,omitempty"`
}

type CreateUserRequest struct {
	Email       string             `json:"email" binding:"required,email"`
	Name        string             `json:"name" binding:"required,min=2"`
	Role        *string            `json:"role" binding:"required"`
	Department  *string            `json:"department"`
	Avatar      *string            `json:"avatar" binding:"omitnil,url"`
	Preferences domain.Preferences `json:"preferences"`
}

type UpdateUserRequest struct {
	ID          uint64             `json:"id" binding:"required"`
	Email       *string            `json:"email" binding:"omitnil,email"`
	Name        *string            `json:"name" binding:"omitnil,min=2"`
	Role        *string            `json:"role"`
	Department  *string            `json:"department"`
	Avatar      *string            `json:"avatar" binding:"omitnil,url"`
	Preferences domain.Preferences `json:"preferences"`
}

// UserIDRequest identifies a user by id.
type UserIDRequest struct {
	ID uint64 `json:"id" binding:"required"`
}
