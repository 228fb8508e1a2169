package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TagRepository struct {
	db *gorm.DB
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []tagModel
	if err := tagInclude.apply(r.db.WithContext(ctx)).Scopes(byID).Find(&rows).Error; err != nil {
		return nil, translateError("list tags", domain.EntityTag, err)
	}
	return toDomainTags(rows, tagInclude), nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uint64) (domain.Tag, error) {
	var row tagModel
	if err := findByID(tagInclude.apply(r.db.WithContext(ctx)), &row, domain.EntityTag, id); err != nil {
		return domain.Tag{}, translateError("get tag", domain.EntityTag, err)
	}
	return toDomainTag(row, tagInclude), nil
}

func (r *TagRepository) Create(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error) {
	row := tagModel{Name: input.Name, Color: input.Color}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return domain.Tag{}, translateError("create tag", domain.EntityTag, err)
	}
	return r.GetByID(ctx, row.ID)
}

func (r *TagRepository) Update(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row tagModel
		if err := findByID(tx, &row, domain.EntityTag, input.ID); err != nil {
			return err
		}
		if input.Name != nil {
			row.Name = *input.Name
		}
		if input.Color != nil {
			row.Color = input.Color
		}
		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return domain.Tag{}, translateError("update tag", domain.EntityTag, err)
	}
	return r.GetByID(ctx, input.ID)
}

// Delete unlinks the tag from its tasks before removing it.
func (r *TagRepository) Delete(ctx context.Context, id uint64) (domain.Tag, error) {
	var row tagModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &row, domain.EntityTag, id); err != nil {
			return err
		}
		if err := tx.Model(&row).Association("Tasks").Clear(); err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return domain.Tag{}, translateError("delete tag", domain.EntityTag, err)
	}
	return toDomainTag(row, noInclude), nil
}
