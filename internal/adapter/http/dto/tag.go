package dto

type TagItem struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Color     *string     `json:"color,omitempty"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	Tasks     *[]TaskItem `json:"tasks,omitempty"`
}

type CreateTagRequest struct {
	Name  string  `json:"name" binding:"required,min=1"`
	Color *string `json:"color"`
}

type UpdateTagRequest struct {
	ID    uint64  `json:"id" binding:"required"`
	Name  *string `json:"name" binding:"omitnil,min=1"`
	Color *string `json:"color"`
}

type TagIDRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

type TasksByTagRequest struct {
	TagID uint64 `json:"tagId" binding:"required"`
}
