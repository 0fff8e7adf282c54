package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Todo คือรายการเดียวใน list ของ user
// ID เป็น unix-millisecond timestamp ตอนสร้าง unique ภายใน list ของ user เดียว
type Todo struct {
	UserID    uuid.UUID `gorm:"primaryKey;type:uuid" json:"userId"`
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Task      string    `gorm:"not null" json:"task"`
	Category  string    `json:"category"`
	Completed bool      `gorm:"default:false" json:"completed"`
	Priority  string    `gorm:"default:'medium'" json:"priority"`
	DueDate   *string   `json:"dueDate"`
	Notes     string    `json:"notes"`
	CreatedAt int64     `gorm:"autoCreateTime:false" json:"createdAt"`
}

func (Todo) TableName() string {
	return "todos"
}

// ValidPriority รายงานว่า p เป็นค่า priority ที่รู้จักหรือไม่
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Normalize เติม default ให้ record ที่ persist ไว้ก่อนมี field ใหม่
// ทุก record ที่ออกจาก store ต้องผ่านจุดนี้จุดเดียว consumer จะได้เห็น shape เต็มเสมอ
func (t *Todo) Normalize() {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.DueDate != nil && *t.DueDate == "" {
		t.DueDate = nil
	}
	if t.CreatedAt == 0 {
		if t.ID != 0 {
			t.CreatedAt = t.ID
		} else {
			t.CreatedAt = time.Now().UnixMilli()
		}
	}
}

// EffectiveCreatedAt ใช้สำหรับ recency ordering
func (t *Todo) EffectiveCreatedAt() int64 {
	if t.CreatedAt != 0 {
		return t.CreatedAt
	}
	return t.ID
}
