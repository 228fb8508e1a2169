package dto

type TeamItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	LeadID    uint64 `json:"leadId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Lead    *UserItem   `json:"lead,omitempty"`
	Members *[]UserItem `json:"members,omitempty"`
	Tasks   *[]TaskItem `json:"tasks,omitempty"`
}

type CreateTeamRequest struct {
	Name      string   `json:"name" binding:"required,min=1"`
	LeadID    uint64   `json:"leadId" binding:"required"`
	MemberIDs []uint64 `json:"memberIds" binding:"omitempty,dive,gt=0"`
}

type UpdateTeamRequest struct {
	ID        uint64   `json:"id" binding:"required"`
	Name      *string  `json:"name" binding:"omitnil,min=1"`
	LeadID    *uint64  `json:"leadId" binding:"omitnil,gt=0"`
	MemberIDs []uint64 `json:"memberIds" binding:"omitempty,dive,gt=0"`
}

type TeamIDRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

type TeamMemberRequest struct {
	TeamID uint64 `json:"teamId" binding:"required"`
	UserID uint64 `json:"userId" binding:"required"`
}
