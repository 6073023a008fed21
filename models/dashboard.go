// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardStats is the aggregated snapshot of a user's GTD state.
type DashboardStats struct {
	ActiveProjects    int `json:"active_projects"`
	TotalProjects     int `json:"total_projects"`
	WeeklyProjects    int `json:"weekly_projects"`
	CompletedProjects int `json:"completed_projects"`
	TotalTasks        int `json:"total_tasks"`
	ActiveTasks       int `json:"active_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	TodayTasks        int `json:"today_tasks"`
	WeekTasks         int `json:"week_tasks"`
	WaitingTasks      int `json:"waiting_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
	TotalFields       int `json:"total_fields"`
}
