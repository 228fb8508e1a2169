package domain

import "time"

type Team struct {
	ID        uint64
	Name      string
	LeadID    uint64
	CreatedAt time.Time
	UpdatedAt time.Time

	Lead    *User
	Members []User
	Tasks   []Task
}

type CreateTeamInput struct {
	Name      string
	LeadID    uint64
	MemberIDs []uint64
}

type UpdateTeamInput struct {
	ID        uint64
	Name      *string
	LeadID    *uint64
	MemberIDs []uint64
}

type TeamMemberInput struct {
	TeamID uint64
	UserID uint64
}
