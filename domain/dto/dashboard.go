package dto

import "taskboard/domain/models"

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type CategoryCount struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type DashboardSummary struct {
	Total          int               `json:"total"`
	Completed      int               `json:"completed"`
	CompletionRate int               `json:"completionRate"`
	Overdue        int               `json:"overdue"`
	DueToday       int               `json:"dueToday"`
	Upcoming       int               `json:"upcoming"`
	NoDate         int               `json:"noDate"`
	Priorities     PriorityBreakdown `json:"priorities"`
	Categories     []CategoryCount   `json:"categories"`
}

type DayPlan struct {
	Date  string        `json:"date"`
	Todos []models.Todo `json:"todos"`
}
