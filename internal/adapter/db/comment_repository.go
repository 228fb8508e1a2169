package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

// CommentRepository stores task comments. Comments are append-only.
type CommentRepository struct {
	db *gorm.DB
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create checks the task but leaves the author id to the store's foreign key.
func (r *CommentRepository) Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	row := commentModel{
		TaskID:  input.TaskID,
		UserID:  input.UserID,
		Content: input.Content,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, &taskModel{}, domain.EntityTask, "taskId", input.TaskID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return domain.Comment{}, translateError("create comment", domain.EntityComment, err)
	}

	var created commentModel
	if err := findByID(commentInclude.apply(r.db.WithContext(ctx)), &created, domain.EntityComment, row.ID); err != nil {
		return domain.Comment{}, translateError("create comment", domain.EntityComment, err)
	}
	return toDomainComment(created, commentInclude), nil
}

// ListByTask returns the newest comment first. An unknown task yields an empty list.
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentModel
	err := commentInclude.apply(r.db.WithContext(ctx)).
		Where("task_id = ?", taskID).
		Scopes(newestFirst).
		Find(&rows).Error
	if err != nil {
		return nil, translateError("list task comments", domain.EntityComment, err)
	}
	return toDomainComments(rows, commentInclude), nil
}
