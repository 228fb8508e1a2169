package db

import "github.com/dontforgetsemicologne/task-flow/internal/core/domain"

func toDomainUser(row userModel, inc include) domain.User {
	user := domain.User{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		Role:        row.Role,
		Department:  row.Department,
		Avatar:      row.Avatar,
		Preferences: row.Preferences,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if inc.has("CreatedTasks") {
		user.CreatedTasks = toDomainTasks(row.CreatedTasks, inc.nested("CreatedTasks"))
	}
	if inc.has("AssignedTasks") {
		user.AssignedTasks = toDomainTasks(row.AssignedTasks, inc.nested("AssignedTasks"))
	}
	if inc.has("TeamsLed") {
		user.TeamsLed = toDomainTeams(row.TeamsLed, inc.nested("TeamsLed"))
	}
	if inc.has("TeamMemberships") {
		user.TeamMemberships = toDomainTeams(row.TeamMemberships, inc.nested("TeamMemberships"))
	}

	return user
}

func toDomainUsers(rows []userModel, inc include) []domain.User {
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row, inc))
	}
	return users
}

func toDomainTask(row taskModel, inc include) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		CreatedByID: row.CreatedByID,
		TeamID:      row.TeamID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Deadline != nil {
		value := row.Deadline.UTC()
		task.Deadline = &value
	}

	if inc.has("CreatedBy") && row.CreatedBy != nil {
		creator := toDomainUser(*row.CreatedBy, inc.nested("CreatedBy"))
		task.CreatedBy = &creator
	}
	if inc.has("Team") && row.Team != nil {
		team := toDomainTeam(*row.Team, inc.nested("Team"))
		task.Team = &team
	}
	if inc.has("Assignees") {
		task.Assignees = toDomainUsers(row.Assignees, inc.nested("Assignees"))
	}
	if inc.has("Tags") {
		task.Tags = toDomainTags(row.Tags, inc.nested("Tags"))
	}
	if inc.has("Comments") {
		task.Comments = toDomainComments(row.Comments, inc.nested("Comments"))
	}

	return task
}

func toDomainTasks(rows []taskModel, inc include) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, toDomainTask(row, inc))
	}
	return tasks
}

func toDomainTeam(row teamModel, inc include) domain.Team {
	team := domain.Team{
		ID:        row.ID,
		Name:      row.Name,
		LeadID:    row.LeadID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if inc.has("Lead") && row.Lead != nil {
		lead := toDomainUser(*row.Lead, inc.nested("Lead"))
		team.Lead = &lead
	}
	if inc.has("Members") {
		team.Members = toDomainUsers(row.Members, inc.nested("Members"))
	}
	if inc.has("Tasks") {
		team.Tasks = toDomainTasks(row.Tasks, inc.nested("Tasks"))
	}

	return team
}

func toDomainTeams(rows []teamModel, inc include) []domain.Team {
	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, toDomainTeam(row, inc))
	}
	return teams
}

func toDomainTag(row tagModel, inc include) domain.Tag {
	tag := domain.Tag{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if inc.has("Tasks") {
		tag.Tasks = toDomainTasks(row.Tasks, inc.nested("Tasks"))
	}
	return tag
}

func toDomainTags(rows []tagModel, inc include) []domain.Tag {
	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, toDomainTag(row, inc))
	}
	return tags
}

func toDomainComment(row commentModel, inc include) domain.Comment {
	comment := domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
	if inc.has("Task") && row.Task != nil {
		task := toDomainTask(*row.Task, inc.nested("Task"))
		comment.Task = &task
	}
	return comment
}

func toDomainComments(rows []commentModel, inc include) []domain.Comment {
	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toDomainComment(row, inc))
	}
	return comments
}
