package validation

import (
	"time"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func BuildCreateUserInput(req dto.CreateUserRequest) domain.CreateUserInput {
	return domain.CreateUserInput{
		Email:       req.Email,
		Name:        req.Name,
		Role:        *req.Role,
		Department:  req.Department,
		Avatar:      req.Avatar,
		Preferences: req.Preferences,
	}
}

func BuildUpdateUserInput(req dto.UpdateUserRequest) domain.UpdateUserInput {
	return domain.UpdateUserInput{
		ID:          req.ID,
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Avatar:      req.Avatar,
		Preferences: req.Preferences,
	}
}

// BuildCreateTaskInput leaves status and priority empty when absent; the task service fills the defaults.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		CreatedByID: req.CreatedByID,
		TeamID:      req.TeamID,
		AssigneeIDs: req.AssigneeIDs,
		TagIDs:      req.TagIDs,
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	input := domain.UpdateTaskInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		AssigneeIDs: req.AssigneeIDs,
		TagIDs:      req.TagIDs,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	return input, nil
}

func BuildCreateCommentInput(req dto.CreateCommentRequest) domain.CreateCommentInput {
	return domain.CreateCommentInput{TaskID: req.TaskID, UserID: req.UserID, Content: req.Content}
}

func BuildCreateTeamInput(req dto.CreateTeamRequest) domain.CreateTeamInput {
	return domain.CreateTeamInput{Name: req.Name, LeadID: req.LeadID, MemberIDs: req.MemberIDs}
}

func BuildUpdateTeamInput(req dto.UpdateTeamRequest) domain.UpdateTeamInput {
	return domain.UpdateTeamInput{ID: req.ID, Name: req.Name, LeadID: req.LeadID, MemberIDs: req.MemberIDs}
}

func BuildTeamMemberInput(req dto.TeamMemberRequest) domain.TeamMemberInput {
	return domain.TeamMemberInput{TeamID: req.TeamID, UserID: req.UserID}
}

func BuildCreateTagInput(req dto.CreateTagRequest) domain.CreateTagInput {
	return domain.CreateTagInput{Name: req.Name, Color: req.Color}
}

func BuildUpdateTagInput(req dto.UpdateTagRequest) domain.UpdateTagInput {
	return domain.UpdateTagInput{ID: req.ID, Name: req.Name, Color: req.Color}
}

func parseDeadline(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, domain.NewValidationError("deadline", "datetime", time.RFC3339)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
