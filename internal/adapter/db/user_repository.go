package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := userInclude.apply(r.db.WithContext(ctx)).Scopes(byID).Find(&rows).Error; err != nil {
		return nil, translateError("list users", domain.EntityUser, err)
	}
	return toDomainUsers(rows, userInclude), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userModel
	if err := findByID(userInclude.apply(r.db.WithContext(ctx)), &row, domain.EntityUser, id); err != nil {
		return domain.User{}, translateError("get user", domain.EntityUser, err)
	}
	return toDomainUser(row, userInclude), nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	row := userModel{
		Email:       input.Email,
		Name:        input.Name,
		Role:        input.Role,
		Department:  input.Department,
		Avatar:      input.Avatar,
		Preferences: input.Preferences,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return domain.User{}, translateError("create user", domain.EntityUser, err)
	}
	return toDomainUser(row, noInclude), nil
}

func (r *UserRepository) Update(ctx context.Context, input domain.UpdateUserInput) (domain.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &row, domain.EntityUser, input.ID); err != nil {
			return err
		}

		if input.Email != nil {
			row.Email = *input.Email
		}
		if input.Name != nil {
			row.Name = *input.Name
		}
		if input.Role != nil {
			row.Role = *input.Role
		}
		if input.Department != nil {
			row.Department = input.Department
		}
		if input.Avatar != nil {
			row.Avatar = input.Avatar
		}
		if input.Preferences != nil {
			row.Preferences = input.Preferences
		}

		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return domain.User{}, translateError("update user", domain.EntityUser, err)
	}
	return toDomainUser(row, noInclude), nil
}

// Delete refuses users that still own tasks, lead teams or authored comments.
// Assignment and membership links are dropped with the user.
func (r *UserRepository) Delete(ctx context.Context, id uint64) (domain.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &row, domain.EntityUser, id); err != nil {
			return err
		}
		if err := blockIfReferenced(tx, &taskModel{}, "created_by_id", domain.EntityUser, id, "user still created tasks"); err != nil {
			return err
		}
		if err := blockIfReferenced(tx, &teamModel{}, "lead_id", domain.EntityUser, id, "user still leads teams"); err != nil {
			return err
		}
		if err := blockIfReferenced(tx, &commentModel{}, "user_id", domain.EntityUser, id, "user still authored comments"); err != nil {
			return err
		}

		if err := tx.Model(&row).Association("AssignedTasks").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&row).Association("TeamMemberships").Clear(); err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return domain.User{}, translateError("delete user", domain.EntityUser, err)
	}
	return toDomainUser(row, noInclude), nil
}
