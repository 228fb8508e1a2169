package db

import (
	"strings"

	"gorm.io/gorm"
)

// include lists the relation paths preloaded by a read, in gorm's dotted notation.
type include []string

var (
	userInclude = include{"CreatedTasks", "AssignedTasks", "TeamsLed", "TeamMemberships"}

	taskDetailInclude   = include{"CreatedBy", "Team", "Assignees", "Tags", "Comments", "Comments.Task"}
	taskInclude         = include{"CreatedBy", "Team", "Assignees", "Tags"}
	assignedTaskInclude = include{"Team", "Tags", "Comments"}

	teamDetailInclude  = include{"Lead", "Members", "Tasks", "Tasks.Assignees", "Tasks.Tags"}
	teamInclude        = include{"Lead", "Members"}
	teamMembersInclude = include{"Members"}
	ledTeamInclude     = include{"Members", "Tasks"}
	memberTeamInclude  = include{"Lead", "Tasks"}

	tagInclude     = include{"Tasks"}
	commentInclude = include{"Task"}

	noInclude = include{}
)

func (inc include) apply(db *gorm.DB) *gorm.DB {
	for _, rel := range inc {
		if rel == "Comments" || strings.HasSuffix(rel, ".Comments") {
			db = db.Preload(rel, newestFirst)
			continue
		}
		db = db.Preload(rel)
	}
	return db
}

func (inc include) has(rel string) bool {
	for _, path := range inc {
		if path == rel || strings.HasPrefix(path, rel+".") {
			return true
		}
	}
	return false
}

// nested returns the paths below rel, relative to rel.
func (inc include) nested(rel string) include {
	prefix := rel + "."
	out := include{}
	for _, path := range inc {
		if strings.HasPrefix(path, prefix) {
			out = append(out, strings.TrimPrefix(path, prefix))
		}
	}
	return out
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
