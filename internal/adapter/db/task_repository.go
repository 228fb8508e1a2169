package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TaskRepository struct {
	db *gorm.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	return r.find(ctx, "list tasks", taskDetailInclude, nil)
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	return r.get(ctx, "get task", taskDetailInclude, id)
}

// Create links assignees and tags by id; none of them is created here.
func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	row := taskModel{
		Title:       input.Title,
		Description: input.Description,
		Status:      string(input.Status),
		Priority:    string(input.Priority),
		Deadline:    input.Deadline,
		CreatedByID: input.CreatedByID,
		TeamID:      input.TeamID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, &userModel{}, domain.EntityUser, "createdById", input.CreatedByID); err != nil {
			return err
		}
		if err := requireReference(tx, &teamModel{}, domain.EntityTeam, "teamId", input.TeamID); err != nil {
			return err
		}

		assignees, err := connectable(tx, domain.EntityUser, "assigneeIds", input.AssigneeIDs, userID)
		if err != nil {
			return err
		}
		tags, err := connectable(tx, domain.EntityTag, "tagIds", input.TagIDs, tagID)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		if err := replaceAssociation(tx, &row, "Assignees", assignees); err != nil {
			return err
		}
		return replaceAssociation(tx, &row, "Tags", tags)
	})
	if err != nil {
		return domain.Task{}, translateError("create task", domain.EntityTask, err)
	}

	return r.get(ctx, "create task", taskInclude, row.ID)
}

// Update changes only the supplied fields. Relation ids replace the whole set.
func (r *TaskRepository) Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row taskModel
		if err := findByID(tx, &row, domain.EntityTask, input.ID); err != nil {
			return err
		}

		if input.Title != nil {
			row.Title = *input.Title
		}
		if input.Description != nil {
			row.Description = input.Description
		}
		if input.Status != nil {
			row.Status = string(*input.Status)
		}
		if input.Priority != nil {
			row.Priority = string(*input.Priority)
		}
		if input.Deadline != nil {
			row.Deadline = input.Deadline
		}

		if input.AssigneeIDs != nil {
			assignees, err := connectable(tx, domain.EntityUser, "assigneeIds", input.AssigneeIDs, userID)
			if err != nil {
				return err
			}
			if err := replaceAssociation(tx, &row, "Assignees", assignees); err != nil {
				return err
			}
		}
		if input.TagIDs != nil {
			tags, err := connectable(tx, domain.EntityTag, "tagIds", input.TagIDs, tagID)
			if err != nil {
				return err
			}
			if err := replaceAssociation(tx, &row, "Tags", tags); err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return domain.Task{}, translateError("update task", domain.EntityTask, err)
	}

	return r.get(ctx, "update task", taskInclude, input.ID)
}

// UpdateStatus sets the status without any transition rule.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row taskModel
		if err := findByID(tx, &row, domain.EntityTask, id); err != nil {
			return err
		}
		return tx.Model(&row).Update("status", string(status)).Error
	})
	if err != nil {
		return domain.Task{}, translateError("update task status", domain.EntityTask, err)
	}

	return r.get(ctx, "update task status", taskInclude, id)
}

// Delete removes the task together with its comments and relation links.
func (r *TaskRepository) Delete(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &row, domain.EntityTask, id); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&row).Association("Assignees").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&row).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return domain.Task{}, translateError("delete task", domain.EntityTask, err)
	}
	return toDomainTask(row, noInclude), nil
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	return r.find(ctx, "list tasks by status", taskInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", string(status))
	})
}

func (r *TaskRepository) ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	return r.find(ctx, "list tasks by priority", taskInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("priority = ?", string(priority))
	})
}

func (r *TaskRepository) ListByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error) {
	return r.find(ctx, "list tasks by team", taskInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("team_id = ?", teamID)
	})
}

func (r *TaskRepository) ListByTag(ctx context.Context, tagID uint64) ([]domain.Task, error) {
	return r.find(ctx, "list tasks by tag", taskInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", r.db.Table("task_tags").Select("task_id").Where("tag_id = ?", tagID))
	})
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return r.find(ctx, "list tasks by assignee", assignedTaskInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", r.db.Table("task_assignees").Select("task_id").Where("user_id = ?", userID))
	})
}

func (r *TaskRepository) get(ctx context.Context, op string, inc include, id uint64) (domain.Task, error) {
	var row taskModel
	if err := findByID(inc.apply(r.db.WithContext(ctx)), &row, domain.EntityTask, id); err != nil {
		return domain.Task{}, translateError(op, domain.EntityTask, err)
	}
	return toDomainTask(row, inc), nil
}

func (r *TaskRepository) find(ctx context.Context, op string, inc include, filter func(*gorm.DB) *gorm.DB) ([]domain.Task, error) {
	query := inc.apply(r.db.WithContext(ctx)).Scopes(byID)
	if filter != nil {
		query = query.Scopes(filter)
	}

	var rows []taskModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(op, domain.EntityTask, err)
	}
	return toDomainTasks(rows, inc), nil
}
