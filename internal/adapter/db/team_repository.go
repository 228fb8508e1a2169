package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TeamRepository struct {
	db *gorm.DB
}

var _ ports.TeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	return r.find(ctx, "list teams", teamDetailInclude, nil)
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint64) (domain.Team, error) {
	return r.get(ctx, "get team", teamDetailInclude, id)
}

func (r *TeamRepository) Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	row := teamModel{Name: input.Name, LeadID: input.LeadID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, &userModel{}, domain.EntityUser, "leadId", input.LeadID); err != nil {
			return err
		}
		members, err := connectable(tx, domain.EntityUser, "memberIds", input.MemberIDs, userID)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		return replaceAssociation(tx, &row, "Members", members)
	})
	if err != nil {
		return domain.Team{}, translateError("create team", domain.EntityTeam, err)
	}

	return r.get(ctx, "create team", teamInclude, row.ID)
}

func (r *TeamRepository) Update(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row teamModel
		if err := findByID(tx, &row, domain.EntityTeam, input.ID); err != nil {
			return err
		}

		if input.Name != nil {
			row.Name = *input.Name
		}
		if input.LeadID != nil {
			if err := requireReference(tx, &userModel{}, domain.EntityUser, "leadId", *input.LeadID); err != nil {
				return err
			}
			row.LeadID = *input.LeadID
		}
		if input.MemberIDs != nil {
			members, err := connectable(tx, domain.EntityUser, "memberIds", input.MemberIDs, userID)
			if err != nil {
				return err
			}
			if err := replaceAssociation(tx, &row, "Members", members); err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Save(&row).Error
	})
	if err != nil {
		return domain.Team{}, translateError("update team", domain.EntityTeam, err)
	}

	return r.get(ctx, "update team", teamInclude, input.ID)
}

// Delete refuses teams that still own tasks. Membership links are dropped with the team.
func (r *TeamRepository) Delete(ctx context.Context, id uint64) (domain.Team, error) {
	var row teamModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findByID(tx, &row, domain.EntityTeam, id); err != nil {
			return err
		}
		if err := blockIfReferenced(tx, &taskModel{}, "team_id", domain.EntityTeam, id, "team still owns tasks"); err != nil {
			return err
		}
		if err := tx.Model(&row).Association("Members").Clear(); err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return domain.Team{}, translateError("delete team", domain.EntityTeam, err)
	}
	return toDomainTeam(row, noInclude), nil
}

// AddMember is idempotent: adding a present member leaves the set unchanged.
func (r *TeamRepository) AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, user, err := memberPair(tx, input)
		if err != nil {
			return err
		}
		return tx.Model(&team).Association("Members").Append(&user)
	})
	if err != nil {
		return domain.Team{}, translateError("add team member", domain.EntityTeam, err)
	}
	return r.get(ctx, "add team member", teamMembersInclude, input.TeamID)
}

func (r *TeamRepository) RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, user, err := memberPair(tx, input)
		if err != nil {
			return err
		}
		return tx.Model(&team).Association("Members").Delete(&user)
	})
	if err != nil {
		return domain.Team{}, translateError("remove team member", domain.EntityTeam, err)
	}
	return r.get(ctx, "remove team member", teamMembersInclude, input.TeamID)
}

func (r *TeamRepository) ListByLead(ctx context.Context, userID uint64) ([]domain.Team, error) {
	return r.find(ctx, "list teams by lead", ledTeamInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("lead_id = ?", userID)
	})
}

func (r *TeamRepository) ListByMember(ctx context.Context, userID uint64) ([]domain.Team, error) {
	return r.find(ctx, "list teams by member", memberTeamInclude, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", r.db.Table("team_members").Select("team_id").Where("user_id = ?", userID))
	})
}

// memberPair loads both ends of a membership change. A missing end is a reference error.
func memberPair(tx *gorm.DB, input domain.TeamMemberInput) (teamModel, userModel, error) {
	var team teamModel
	if err := findByID(tx, &team, domain.EntityTeam, input.TeamID); err != nil {
		return teamModel{}, userModel{}, asReference(err, "teamId")
	}
	var user userModel
	if err := findByID(tx, &user, domain.EntityUser, input.UserID); err != nil {
		return teamModel{}, userModel{}, asReference(err, "userId")
	}
	return team, user, nil
}

func asReference(err error, field string) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return &domain.ReferenceError{Field: field, Entity: nf.Entity, IDs: []uint64{nf.ID}}
	}
	return err
}

func (r *TeamRepository) get(ctx context.Context, op string, inc include, id uint64) (domain.Team, error) {
	var row teamModel
	if err := findByID(inc.apply(r.db.WithContext(ctx)), &row, domain.EntityTeam, id); err != nil {
		return domain.Team{}, translateError(op, domain.EntityTeam, err)
	}
	return toDomainTeam(row, inc), nil
}

func (r *TeamRepository) find(ctx context.Context, op string, inc include, filter func(*gorm.DB) *gorm.DB) ([]domain.Team, error) {
	query := inc.apply(r.db.WithContext(ctx)).Scopes(byID)
	if filter != nil {
		query = query.Scopes(filter)
	}

	var rows []teamModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(op, domain.EntityTeam, err)
	}
	return toDomainTeams(rows, inc), nil
}
