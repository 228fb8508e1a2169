package mapper

import (
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func ToTagItems(tags []domain.Tag) []dto.TagItem {
	return list(tags, ToTagItem)
}

func ToTagItem(tag domain.Tag) dto.TagItem {
	return dto.TagItem{
		ID:        tag.ID,
		Name:      tag.Name,
		Color:     tag.Color,
		CreatedAt: formatTime(tag.CreatedAt),
		UpdatedAt: formatTime(tag.UpdatedAt),
		Tasks:     relation(tag.Tasks, ToTaskItem),
	}
}
