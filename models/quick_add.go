package models

// QuickAddRequest carries one line of quick-add text.
type QuickAddRequest struct {
	Text string `json:"text" validate:"required,notblank,max=1000"`
}

// TaskDraft is the structured result of parsing quick-add text.
// ProjectHint and FieldHint are names still to be resolved to ids.
type TaskDraft struct {
	Name            string `json:"name"`
	DoToday         bool   `json:"do_today"`
	DoThisWeek      bool   `json:"do_this_week"`
	WaitFor         bool   `json:"wait_for"`
	IsReading       bool   `json:"is_reading"`
	Priority        int    `json:"priority"`
	DoOnDate        *Date  `json:"do_on_date,omitempty"`
	TimeExpenditure string `json:"time_expenditure,omitempty"`
	URL             string `json:"url,omitempty"`
	ProjectHint     string `json:"project_hint,omitempty"`
	FieldHint       string `json:"field_hint,omitempty"`
}

// ToCreate converts the draft into a task creation payload.
func (d TaskDraft) ToCreate(projectID, fieldID *int64) TaskCreate {
	priority := d.Priority
	return TaskCreate{
		Name:            d.Name,
		ProjectID:       projectID,
		FieldID:         fieldID,
		DoToday:         d.DoToday,
		DoThisWeek:      d.DoThisWeek,
		WaitFor:         d.WaitFor,
		IsReading:       d.IsReading,
		Priority:        &priority,
		DoOnDate:        d.DoOnDate,
		TimeExpenditure: d.TimeExpenditure,
		URL:             d.URL,
	}
}
