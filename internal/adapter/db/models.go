package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

type userModel struct {
	ID          uint64             `gorm:"primaryKey"`
	Email       string             `gorm:"size:255;not null;uniqueIndex"`
	Name        string             `gorm:"size:255;not null"`
	Role        string             `gorm:"size:100;not null"`
	Department  *string            `gorm:"size:255"`
	Avatar      *string            `gorm:"size:2048"`
	Preferences domain.Preferences `gorm:"type:text;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedTasks    []taskModel `gorm:"foreignKey:CreatedByID"`
	AssignedTasks   []taskModel `gorm:"many2many:task_assignees;joinForeignKey:UserID;joinReferences:TaskID"`
	TeamsLed        []teamModel `gorm:"foreignKey:LeadID"`
	TeamMemberships []teamModel `gorm:"many2many:team_members;joinForeignKey:UserID;joinReferences:TeamID"`
}

func (userModel) TableName() string { return "users" }

type teamModel struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	LeadID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lead    *userModel  `gorm:"foreignKey:LeadID"`
	Members []userModel `gorm:"many2many:team_members;joinForeignKey:TeamID;joinReferences:UserID"`
	Tasks   []taskModel `gorm:"foreignKey:TeamID"`
}

func (teamModel) TableName() string { return "teams" }

type taskModel struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Description *string `gorm:"type:text"`
	Status      string  `gorm:"size:20;not null;default:PENDING;index"`
	Priority    string  `gorm:"size:20;not null;default:MEDIUM;index"`
	Deadline    *time.Time
	CreatedByID uint64 `gorm:"not null;index"`
	TeamID      uint64 `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy *userModel     `gorm:"foreignKey:CreatedByID"`
	Team      *teamModel     `gorm:"foreignKey:TeamID"`
	Assignees []userModel    `gorm:"many2many:task_assignees;joinForeignKey:TaskID;joinReferences:UserID"`
	Tags      []tagModel     `gorm:"many2many:task_tags;joinForeignKey:TaskID;joinReferences:TagID"`
	Comments  []commentModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (taskModel) TableName() string { return "tasks" }

type tagModel struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;not null"`
	Color     *string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []taskModel `gorm:"many2many:task_tags;joinForeignKey:TagID;joinReferences:TaskID"`
}

func (tagModel) TableName() string { return "tags" }

type commentModel struct {
	ID        uint64    `gorm:"primaryKey"`
	TaskID    uint64    `gorm:"not null;index"`
	UserID    uint64    `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`

	Task *taskModel `gorm:"foreignKey:TaskID"`
	User *userModel `gorm:"foreignKey:UserID"`
}

func (commentModel) TableName() string { return "comments" }

// Migrate creates or updates every table, including the join tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&teamModel{},
		&tagModel{},
		&taskModel{},
		&commentModel{},
	); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}
	return nil
}
