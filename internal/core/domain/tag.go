package domain

import "time"

type Tag struct {
	ID        uint64
	Name      string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []Task
}

type CreateTagInput struct {
	Name  string
	Color *string
}

type UpdateTagInput struct {
	ID    uint64
	Name  *string
	Color *string
}
