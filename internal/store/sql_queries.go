package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-gtd/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with Postgres $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (login, password_hash, display_name, email, language, settings)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, login, password_hash, display_name, email, language, settings, created_at, updated_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, display_name, email, language, settings, created_at, updated_at
    FROM users
    WHERE login = $1 AND deleted_at IS NULL;`

	getUser = `SELECT user_id, login, password_hash, display_name, email, language, settings, created_at, updated_at
    FROM users
    WHERE user_id = $1 AND deleted_at IS NULL;`

	ensureUser = `INSERT INTO users (user_id, login, display_name)
    VALUES ($1, $2, $3)
    ON CONFLICT DO NOTHING;`

	syncUserSequence = `SELECT setval(pg_get_serial_sequence('users', 'user_id'), GREATEST((SELECT MAX(user_id) FROM users), 1));`

	projectExists = `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL);`
	fieldExists   = `SELECT EXISTS (SELECT 1 FROM fields WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL);`

	detachTasksFromProject  = `UPDATE tasks SET project_id = NULL, updated_at = NOW() WHERE project_id = $1 AND user_id = $2;`
	detachTasksFromField    = `UPDATE tasks SET field_id = NULL, updated_at = NOW() WHERE field_id = $1 AND user_id = $2;`
	detachProjectsFromField = `UPDATE projects SET field_id = NULL, updated_at = NOW() WHERE field_id = $1 AND user_id = $2;`

	projectStats = `SELECT
        COUNT(*),
        COUNT(*) FILTER (WHERE done_at IS NULL),
        COUNT(*) FILTER (WHERE done_at IS NULL AND do_this_week),
        COUNT(*) FILTER (WHERE done_at IS NOT NULL)
    FROM projects
    WHERE user_id = $1 AND deleted_at IS NULL;`

	taskStats = `SELECT
        COUNT(*),
        COUNT(*) FILTER (WHERE done_at IS NULL),
        COUNT(*) FILTER (WHERE done_at IS NOT NULL),
        COUNT(*) FILTER (WHERE done_at IS NULL AND (do_today OR do_on_date <= $2)),
        COUNT(*) FILTER (WHERE done_at IS NULL AND do_this_week),
        COUNT(*) FILTER (WHERE done_at IS NULL AND wait_for),
        COUNT(*) FILTER (WHERE done_at IS NULL AND do_on_date < $2)
    FROM tasks
    WHERE user_id = $1 AND deleted_at IS NULL;`

	fieldStats = `SELECT COUNT(*) FROM fields WHERE user_id = $1 AND deleted_at IS NULL;`
)

// openTaskCount is the derived task_count of a project: its live, not done tasks.
const openTaskCount = `(SELECT COUNT(*) FROM tasks t
    WHERE t.project_id = p.id AND t.deleted_at IS NULL AND t.done_at IS NULL) AS task_count`

var projectColumns = []string{
	"p.id", "p.user_id", "p.name", "p.field_id",
	"(p.done_at IS NOT NULL) AS done_status", "p.done_at", "p.do_this_week",
	"p.keywords", "p.readings", "p.created_at", "p.updated_at", openTaskCount,
}

var taskColumns = []string{
	"t.id", "t.user_id", "t.name", "t.project_id", "t.field_id",
	"(t.done_at IS NOT NULL) AS done_status", "t.done_at",
	"t.do_today", "t.do_this_week", "t.is_reading", "t.wait_for", "t.postponed", "t.reviewed",
	"t.priority", "t.do_on_date", "t.time_expenditure", "t.url", "t.knowledge_db_entry",
	"t.created_at", "t.updated_at",
}

var fieldColumns = []string{
	"f.id", "f.user_id", "f.name", "f.description", "f.created_at", "f.updated_at",
}

// Sortable columns per resource.
var (
	projectSorts = map[string]string{
		"created_at": "p.created_at",
		"updated_at": "p.updated_at",
		"name":       "p.name",
	}
	taskSorts = map[string]string{
		"created_at": "t.created_at",
		"updated_at": "t.updated_at",
		"name":       "t.name",
		"priority":   "t.priority",
		"do_on_date": "t.do_on_date",
	}
	fieldSorts = map[string]string{
		"created_at": "f.created_at",
		"updated_at": "f.updated_at",
		"name":       "f.name",
	}
)

// ValidSort reports whether key is a sortable column of resource.
func ValidSort(resource, key string) bool {
	var sorts map[string]string
	switch resource {
	case models.ResourceProject:
		sorts = projectSorts
	case models.ResourceTask:
		sorts = taskSorts
	case models.ResourceField:
		sorts = fieldSorts
	}
	_, ok := sorts[key]
	return ok
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// listWhere is the shared WHERE of list and count statements.
func listWhere(alias string, userID int64, p models.ListParams) sq.And {
	where := sq.And{
		sq.Eq{alias + ".user_id": userID},
		sq.Expr(alias + ".deleted_at IS NULL"),
	}

	if p.Search != "" {
		where = append(where, sq.ILike{alias + ".name": containsPattern(p.Search)})
	}

	if p.IsDone != nil {
		if *p.IsDone {
			where = append(where, sq.Expr(alias+".done_at IS NOT NULL"))
		} else {
			where = append(where, sq.Expr(alias+".done_at IS NULL"))
		}
	}

	if p.FieldID != nil {
		where = append(where, sq.Eq{alias + ".field_id": *p.FieldID})
	}

	return where
}

func orderBy(sorts map[string]string, p models.ListParams) (string, error) {
	sort := p.Sort
	if sort == "" {
		sort = "created_at"
	}
	column, ok := sorts[sort]
	if !ok {
		return "", fmt.Errorf("%w: unknown sort %q", ErrBuildingSQLQuery, sort)
	}

	order := "ASC"
	if strings.EqualFold(p.Order, models.OrderDesc) {
		order = "DESC"
	}

	return column + " " + order, nil
}

func paginate(b sq.SelectBuilder, p models.ListParams) sq.SelectBuilder {
	if p.Limit > 0 {
		b = b.Limit(uint64(p.Limit))
	}
	if p.Offset > 0 {
		b = b.Offset(uint64(p.Offset))
	}
	return b
}

func buildListProjectsQuery(userID int64, f models.ProjectFilter) (string, []any, error) {
	where := listWhere("p", userID, f.ListParams)
	if f.DoThisWeek != nil {
		where = append(where, sq.Eq{"p.do_this_week": *f.DoThisWeek})
	}

	order, err := orderBy(projectSorts, f.ListParams)
	if err != nil {
		return "", nil, err
	}

	b := psql.Select(projectColumns...).From("projects p").Where(where).OrderBy(order, "p.id")
	return paginate(b, f.ListParams).ToSql()
}

func buildCountProjectsQuery(userID int64, f models.ProjectFilter) (string, []any, error) {
	where := listWhere("p", userID, f.ListParams)
	if f.DoThisWeek != nil {
		where = append(where, sq.Eq{"p.do_this_week": *f.DoThisWeek})
	}
	return psql.Select("COUNT(*)").From("projects p").Where(where).ToSql()
}

func taskWhere(userID int64, f models.TaskFilter) sq.And {
	where := listWhere("t", userID, f.ListParams)
	if f.ProjectID != nil {
		where = append(where, sq.Eq{"t.project_id": *f.ProjectID})
	}
	if f.DoToday != nil {
		where = append(where, sq.Eq{"t.do_today": *f.DoToday})
	}
	if f.DoThisWeek != nil {
		where = append(where, sq.Eq{"t.do_this_week": *f.DoThisWeek})
	}
	if f.WaitFor != nil {
		where = append(where, sq.Eq{"t.wait_for": *f.WaitFor})
	}
	if f.IsReading != nil {
		where = append(where, sq.Eq{"t.is_reading": *f.IsReading})
	}
	return where
}

func buildListTasksQuery(userID int64, f models.TaskFilter) (string, []any, error) {
	order, err := orderBy(taskSorts, f.ListParams)
	if err != nil {
		return "", nil, err
	}

	b := psql.Select(taskColumns...).From("tasks t").Where(taskWhere(userID, f)).OrderBy(order, "t.id")
	return paginate(b, f.ListParams).ToSql()
}

func buildCountTasksQuery(userID int64, f models.TaskFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").From("tasks t").Where(taskWhere(userID, f)).ToSql()
}

// scheduledOrder is the default order of the today and week views.
var scheduledOrder = []string{"t.priority DESC", "t.created_at ASC", "t.id"}

// scheduledWhere narrows a task filter to open tasks matching due. Done tasks
// never belong to a scheduled view, so an is_done filter is ignored.
func scheduledWhere(userID int64, f models.TaskFilter, due sq.Or) sq.And {
	f.IsDone = nil
	return append(taskWhere(userID, f), sq.Expr("t.done_at IS NULL"), due)
}

func todayDue(today time.Time) sq.Or {
	return sq.Or{sq.Eq{"t.do_today": true}, sq.LtOrEq{"t.do_on_date": today}}
}

func weekDue(weekEnd time.Time) sq.Or {
	return sq.Or{sq.Eq{"t.do_this_week": true}, sq.Lt{"t.do_on_date": weekEnd}}
}

func buildScheduledTasksQuery(where sq.And, p models.ListParams) (string, []any, error) {
	order := scheduledOrder
	if p.Sort != "" {
		column, err := orderBy(taskSorts, p)
		if err != nil {
			return "", nil, err
		}
		order = []string{column, "t.id"}
	}

	b := psql.Select(taskColumns...).From("tasks t").Where(where).OrderBy(order...)
	return paginate(b, p).ToSql()
}

// buildListTodayTasksQuery selects open tasks flagged for today or scheduled
// on or before today.
func buildListTodayTasksQuery(userID int64, today time.Time, f models.TaskFilter) (string, []any, error) {
	return buildScheduledTasksQuery(scheduledWhere(userID, f, todayDue(today)), f.ListParams)
}

func buildCountTodayTasksQuery(userID int64, today time.Time, f models.TaskFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").From("tasks t").Where(scheduledWhere(userID, f, todayDue(today))).ToSql()
}

// buildListWeekTasksQuery selects open tasks flagged for this week or
// scheduled before weekEnd.
func buildListWeekTasksQuery(userID int64, weekEnd time.Time, f models.TaskFilter) (string, []any, error) {
	return buildScheduledTasksQuery(scheduledWhere(userID, f, weekDue(weekEnd)), f.ListParams)
}

func buildCountWeekTasksQuery(userID int64, weekEnd time.Time, f models.TaskFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").From("tasks t").Where(scheduledWhere(userID, f, weekDue(weekEnd))).ToSql()
}

func buildListFieldsQuery(userID int64, p models.ListParams) (string, []any, error) {
	p.IsDone = nil
	p.FieldID = nil
	order, err := orderBy(fieldSorts, p)
	if err != nil {
		return "", nil, err
	}

	b := psql.Select(fieldColumns...).From("fields f").Where(listWhere("f", userID, p)).OrderBy(order, "f.id")
	return paginate(b, p).ToSql()
}

func buildCountFieldsQuery(userID int64, p models.ListParams) (string, []any, error) {
	p.IsDone = nil
	p.FieldID = nil
	return psql.Select("COUNT(*)").From("fields f").Where(listWhere("f", userID, p)).ToSql()
}

func buildGetProjectQuery(userID, id int64) (string, []any, error) {
	return psql.Select(projectColumns...).From("projects p").
		Where(sq.Eq{"p.id": id, "p.user_id": userID}).
		Where("p.deleted_at IS NULL").
		ToSql()
}

func buildGetTaskQuery(userID, id int64) (string, []any, error) {
	return psql.Select(taskColumns...).From("tasks t").
		Where(sq.Eq{"t.id": id, "t.user_id": userID}).
		Where("t.deleted_at IS NULL").
		ToSql()
}

func buildGetFieldQuery(userID, id int64) (string, []any, error) {
	return psql.Select(fieldColumns...).From("fields f").
		Where(sq.Eq{"f.id": id, "f.user_id": userID}).
		Where("f.deleted_at IS NULL").
		ToSql()
}

func buildInsertProjectQuery(userID int64, in models.ProjectCreate) (string, []any, error) {
	return psql.Insert("projects").
		Columns("user_id", "name", "field_id", "do_this_week", "keywords", "readings").
		Values(userID, in.Name, in.FieldID, in.DoThisWeek, in.Keywords, in.Readings).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertTaskQuery(userID int64, in models.TaskCreate) (string, []any, error) {
	priority := models.DefaultPriority
	if in.Priority != nil {
		priority = *in.Priority
	}

	return psql.Insert("tasks").
		Columns("user_id", "name", "project_id", "field_id", "do_today", "do_this_week",
			"is_reading", "wait_for", "postponed", "priority", "do_on_date",
			"time_expenditure", "url", "knowledge_db_entry").
		Values(userID, in.Name, in.ProjectID, in.FieldID, in.DoToday, in.DoThisWeek,
			in.IsReading, in.WaitFor, in.Postponed, priority, dateArg(in.DoOnDate),
			in.TimeExpenditure, in.URL, in.KnowledgeDBEntry).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertFieldQuery(userID int64, in models.FieldCreate) (string, []any, error) {
	return psql.Insert("fields").
		Columns("user_id", "name", "description").
		Values(userID, in.Name, in.Description).
		Suffix("RETURNING id").
		ToSql()
}

// nullableID maps 0 to NULL so an update can detach a reference.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// dateArg maps a nil or zero date to NULL.
func dateArg(d *models.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

func doneAt(done bool) any {
	if done {
		return sq.Expr("COALESCE(done_at, NOW())")
	}
	return nil
}

func buildUpdateProjectQuery(userID, id int64, u models.ProjectUpdate) (string, []any, error) {
	b := psql.Update("projects").Set("updated_at", sq.Expr("NOW()"))

	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.FieldID != nil {
		b = b.Set("field_id", nullableID(*u.FieldID))
	}
	if u.DoneStatus != nil {
		b = b.Set("done_at", doneAt(*u.DoneStatus))
	}
	if u.DoThisWeek != nil {
		b = b.Set("do_this_week", *u.DoThisWeek)
	}
	if u.Keywords != nil {
		b = b.Set("keywords", *u.Keywords)
	}
	if u.Readings != nil {
		b = b.Set("readings", *u.Readings)
	}

	return b.Where(sq.Eq{"id": id, "user_id": userID}).Where("deleted_at IS NULL").ToSql()
}

func buildUpdateTaskQuery(userID, id int64, u models.TaskUpdate) (string, []any, error) {
	b := psql.Update("tasks").Set("updated_at", sq.Expr("NOW()"))

	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.ProjectID != nil {
		b = b.Set("project_id", nullableID(*u.ProjectID))
	}
	if u.FieldID != nil {
		b = b.Set("field_id", nullableID(*u.FieldID))
	}
	if u.DoneStatus != nil {
		b = b.Set("done_at", doneAt(*u.DoneStatus))
	}
	flags := []struct {
		column string
		value  *bool
	}{
		{"do_today", u.DoToday},
		{"do_this_week", u.DoThisWeek},
		{"is_reading", u.IsReading},
		{"wait_for", u.WaitFor},
		{"postponed", u.Postponed},
		{"reviewed", u.Reviewed},
	}
	for _, f := range flags {
		if f.value != nil {
			b = b.Set(f.column, *f.value)
		}
	}
	if u.Priority != nil {
		b = b.Set("priority", *u.Priority)
	}
	if u.DoOnDate != nil {
		b = b.Set("do_on_date", dateArg(u.DoOnDate))
	}
	if u.TimeExpenditure != nil {
		b = b.Set("time_expenditure", *u.TimeExpenditure)
	}
	if u.URL != nil {
		b = b.Set("url", *u.URL)
	}
	if u.KnowledgeDBEntry != nil {
		b = b.Set("knowledge_db_entry", *u.KnowledgeDBEntry)
	}

	return b.Where(sq.Eq{"id": id, "user_id": userID}).Where("deleted_at IS NULL").ToSql()
}

func buildUpdateFieldQuery(userID, id int64, u models.FieldUpdate) (string, []any, error) {
	b := psql.Update("fields").Set("updated_at", sq.Expr("NOW()"))

	if u.Name != nil {
		b = b.Set("name", *u.Name)
	}
	if u.Description != nil {
		b = b.Set("description", *u.Description)
	}

	return b.Where(sq.Eq{"id": id, "user_id": userID}).Where("deleted_at IS NULL").ToSql()
}

func buildUpdateUserQuery(userID int64, u models.UserUpdate) (string, []any, error) {
	b := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if u.DisplayName != nil {
		b = b.Set("display_name", *u.DisplayName)
	}
	if u.Email != nil {
		b = b.Set("email", *u.Email)
	}
	if u.Language != nil {
		b = b.Set("language", *u.Language)
	}
	if u.Settings != nil {
		b = b.Set("settings", *u.Settings)
	}

	return b.Where(sq.Eq{"user_id": userID}).Where("deleted_at IS NULL").ToSql()
}

func buildSoftDeleteQuery(table string, userID, id int64) (string, []any, error) {
	return psql.Update(table).
		Set("deleted_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Where("deleted_at IS NULL").
		ToSql()
}
