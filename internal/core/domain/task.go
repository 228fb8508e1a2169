package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Task relations are nil when they were not part of the include set of the read.
type Task struct {
	ID          uint64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Deadline    *time.Time
	CreatedByID uint64
	TeamID      uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy *User
	Team      *Team
	Assignees []User
	Tags      []Tag
	Comments  []Comment
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	Deadline    *time.Time
	CreatedByID uint64
	TeamID      uint64
	// nil leaves the relation empty; ids are connected, never created.
	AssigneeIDs []uint64
	TagIDs      []uint64
}

type UpdateTaskInput struct {
	ID          uint64
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	Deadline    *time.Time
	// nil leaves the relation untouched, non-nil replaces the whole set.
	AssigneeIDs []uint64
	TagIDs      []uint64
}

type Comment struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Content   string
	CreatedAt time.Time

	Task *Task
}

type CreateCommentInput struct {
	TaskID  uint64
	UserID  uint64
	Content string
}
