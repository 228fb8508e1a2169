package domain

import "time"

type User struct {
	ID          uint64
	Email       string
	Name        string
	Role        string
	Department  *string
	Avatar      *string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedTasks    []Task
	AssignedTasks   []Task
	TeamsLed        []Team
	TeamMemberships []Team
}

type CreateUserInput struct {
	Email       string
	Name        string
	Role        string
	Department  *string
	Avatar      *string
	Preferences Preferences
}

type UpdateUserInput struct {
	ID          uint64
	Email       *string
	Name        *string
	Role        *string
	Department  *string
	Avatar      *string
	Preferences Preferences
}
