package dto

import (
	"fmt"
	"strconv"
	"strings"

	"taskboard/domain/models"
)

// FlexibleID รับ id ได้ทั้ง number และ numeric string
// client บางตัวส่ง todoId มาเป็น "1712345678901"
type FlexibleID int64

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric id %q", s)
	}
	*f = FlexibleID(n)
	return nil
}

func (f FlexibleID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

func (f FlexibleID) Int64() int64 {
	return int64(f)
}

type CreateTodoRequest struct {
	UserID    string  `json:"userId" validate:"required,uuid"`
	Task      string  `json:"task" validate:"required,min=1,max=500"`
	Category  string  `json:"category" validate:"omitempty,max=100"`
	Completed *bool   `json:"completed"`
	Priority  string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate   *string `json:"dueDate"`
	Notes     string  `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	UserID    string     `json:"userId" validate:"required,uuid"`
	TodoID    FlexibleID `json:"todoId" validate:"required"`
	Completed *bool      `json:"completed" validate:"required"`
}

type UpdateTodoRequest struct {
	UserID    string     `json:"userId" validate:"required,uuid"`
	TodoID    FlexibleID `json:"todoId" validate:"required"`
	Task      *string    `json:"task" validate:"omitempty,min=1,max=500"`
	Category  *string    `json:"category" validate:"omitempty,max=100"`
	Priority  *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate   *string    `json:"dueDate"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
	Completed *bool      `json:"completed"`
}

// Fields แปลง request เป็น partial-update map (เฉพาะ field ที่ส่งมา)
func (r *UpdateTodoRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Task != nil {
		fields["task"] = *r.Task
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	if r.DueDate != nil {
		fields["due_date"] = *r.DueDate
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.Completed != nil {
		fields["completed"] = *r.Completed
	}
	return fields
}

type DeleteTodoRequest struct {
	UserID string     `json:"userId" validate:"required,uuid"`
	TodoID FlexibleID `json:"todoId" validate:"required"`
}

type TodoMutationResponse struct {
	Message string       `json:"message"`
	Result  *models.Todo `json:"result"`
}
