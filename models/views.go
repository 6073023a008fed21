package models

// ProjectView is the presentation shape of a project served by the gateway.
type ProjectView struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	FieldID     *int64 `json:"field_id"`
	FieldName   string `json:"field_name"`
	DoneStatus  bool   `json:"done_status"`
	DoThisWeek  bool   `json:"do_this_week"`
	TaskCount   int    `json:"task_count"`
	Keywords    string `json:"keywords"`
	Readings    string `json:"readings"`
}

// TaskView is the presentation shape of a task served by the gateway.
type TaskView struct {
	ID               int64  `json:"id"`
	TaskName         string `json:"task_name"`
	ProjectID        *int64 `json:"project_id"`
	ProjectName      string `json:"project_name"`
	FieldID          *int64 `json:"field_id"`
	FieldName        string `json:"field_name"`
	DoneStatus       bool   `json:"done_status"`
	DoToday          bool   `json:"do_today"`
	DoThisWeek       bool   `json:"do_this_week"`
	IsReading        bool   `json:"is_reading"`
	WaitFor          bool   `json:"wait_for"`
	Postponed        bool   `json:"postponed"`
	Reviewed         bool   `json:"reviewed"`
	Priority         int    `json:"priority"`
	DoOnDate         string `json:"do_on_date"`
	TimeExpenditure  string `json:"time_expenditure"`
	URL              string `json:"url"`
	KnowledgeDBEntry string `json:"knowledge_db_entry"`
}

// FieldView is the presentation shape of a field served by the gateway.
type FieldView struct {
	ID          int64  `json:"id"`
	FieldName   string `json:"field_name"`
	Description string `json:"description"`
}

// ViewPage is a gateway list response.
type ViewPage[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
